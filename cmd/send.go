package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sendCmd = &cobra.Command{
	Use:   "send <line>...",
	Short: "send lines to a telnet endpoint and print each reply",
	Args:  cobra.MinimumNArgs(1),
	Run:   send,
}

func init() {
	rootCmd.AddCommand(sendCmd)
}

func send(cmd *cobra.Command, args []string) {
	logger := newLogger()
	session, err := connect(logger)
	if err != nil {
		logger.Fatal(err)
	}
	defer session.Close()

	for _, line := range args {
		if !session.WriteLine(line) {
			logger.Fatal("write failed")
		}
		fmt.Println(session.ReadNonEmpty(true))
	}
}
