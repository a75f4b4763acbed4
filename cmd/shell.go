package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "interactive line-at-a-time session",
	Run:   shell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func shell(cmd *cobra.Command, args []string) {
	logger := newLogger()
	session, err := connect(logger)
	if err != nil {
		logger.Fatal(err)
	}
	defer session.Close()

	fmt.Print(session.ReadNonEmpty(false))

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if !session.WriteLine(scanner.Text()) {
			logger.Error("write failed, closing session")
			break
		}
		fmt.Print(session.ReadNonEmpty(false))
	}
}
