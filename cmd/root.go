package cmd

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/t9mike/cs-telnet/telnet"
)

var (
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   "cstelnet",
		Short: "cstelnet automates line-oriented telnet sessions",
	}
)

func Execute() {
	rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.cstelnet.yaml)")
	pf.StringP("addr", "a", "localhost:23", "host:port to connect to")
	pf.String("level", "info", "log level")
	pf.String("eol", "crlf", "line terminator: crlf, crnul or lf")
	pf.String("encoding", "ascii", "text encoding: ascii, latin1 or utf8")
	pf.Duration("write-delay", 10*time.Millisecond, "pause between transmitted characters")
	pf.Duration("poll-interval", 100*time.Millisecond, "pause between input polls")
	pf.Duration("read-timeout", 100*time.Millisecond, "maximum wait for non-empty input")
	pf.Bool("proxy-protocol", false, "send a PROXY protocol header after connecting")
	pf.String("user", "", "log in as this user after connecting")
	pf.String("password", "", "password for --user")
	for _, name := range []string{
		"addr", "level", "eol", "encoding", "write-delay",
		"poll-interval", "read-timeout", "proxy-protocol",
		"user", "password",
	} {
		viper.BindPFlag(name, pf.Lookup(name))
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			log.Fatalln("error finding home directory:", err)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".cstelnet")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		log.Printf("loaded config at '%s'", viper.ConfigFileUsed())
	}

	if addr := viper.GetString("debugaddr"); addr != "" {
		go launchProfiler(addr)
	}
}

func launchProfiler(addr string) {
	log.Printf("pprof listening on '%s'", addr)
	log.Println(http.ListenAndServe(addr, nil))
}

func newLogger() *logrus.Logger {
	logger := logrus.New()
	level, err := logrus.ParseLevel(viper.GetString("level"))
	if err != nil {
		logger.Fatal(err)
	}
	logger.SetLevel(level)
	return logger
}

func sessionConfig() (telnet.Config, error) {
	enc, err := telnet.EncodingByName(viper.GetString("encoding"))
	if err != nil {
		return telnet.Config{}, err
	}
	mode, err := telnet.ParseEOLMode(viper.GetString("eol"))
	if err != nil {
		return telnet.Config{}, err
	}
	return telnet.Config{
		EOLMode:             mode,
		Encoding:            enc,
		WriteDelay:          viper.GetDuration("write-delay"),
		PollInterval:        viper.GetDuration("poll-interval"),
		NonEmptyReadTimeout: viper.GetDuration("read-timeout"),
		SendProxyHeader:     viper.GetBool("proxy-protocol"),
	}, nil
}

// connect dials the configured address and wires logging, notifications
// and the optional auto-login.
func connect(logger *logrus.Logger) (*telnet.Session, error) {
	conf, err := sessionConfig()
	if err != nil {
		return nil, err
	}
	addr := viper.GetString("addr")
	session, err := telnet.Dial(addr, conf)
	if err != nil {
		return nil, err
	}
	session.SetLogger(newLogrusLogger(logger, logrus.Fields{"addr": addr}))
	session.SetNotifier(telnet.FuncNotifier{
		OnSend: func(text string) { logger.Debugf("send %q", text) },
		OnRead: func(text string) { logger.Debugf("read %q", text) },
	})
	if user := viper.GetString("user"); user != "" {
		err := session.Login(telnet.LoginConfig{
			Username: user,
			Password: viper.GetString("password"),
		})
		if err != nil {
			session.Close()
			return nil, err
		}
	}
	return session, nil
}
