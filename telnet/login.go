package telnet

import (
	"errors"
	"regexp"
)

// Default prompt patterns for Login.
var (
	DefaultUsernamePattern = regexp.MustCompile(`(?i)login:?\s*$|username:?\s*$|name:?\s*$|user:?\s*$`)
	DefaultPasswordPattern = regexp.MustCompile(`(?i)password:?\s*$|passwd:?\s*$`)
	DefaultSuccessPattern  = regexp.MustCompile(`(?i)last\s*login|login\s*time|success|[#$%>]\s*$`)
	DefaultFailurePattern  = regexp.MustCompile(`(?i)incorrect|invalid|failed|denied`)
)

// ErrLoginFailed is returned by Login when the remote reports bad
// credentials.
var ErrLoginFailed = errors.New("telnet: login failed")

// LoginConfig drives the prompt dialogue of Session.Login. Nil patterns
// fall back to the defaults above.
type LoginConfig struct {
	Username string
	Password string

	UsernamePattern *regexp.Regexp
	PasswordPattern *regexp.Regexp
	SuccessPattern  *regexp.Regexp
	FailurePattern  *regexp.Regexp

	// MaxPrompts caps how many reads are attempted before giving up,
	// ten by default.
	MaxPrompts int
}

func (c *LoginConfig) setDefaults() {
	if c.UsernamePattern == nil {
		c.UsernamePattern = DefaultUsernamePattern
	}
	if c.PasswordPattern == nil {
		c.PasswordPattern = DefaultPasswordPattern
	}
	if c.SuccessPattern == nil {
		c.SuccessPattern = DefaultSuccessPattern
	}
	if c.FailurePattern == nil {
		c.FailurePattern = DefaultFailurePattern
	}
	if c.MaxPrompts == 0 {
		c.MaxPrompts = 10
	}
}

// Login answers username and password prompts until the success pattern
// matches. Each silent window is bounded by NonEmptyReadTimeout, so a
// dead remote cannot hang the caller indefinitely.
func (s *Session) Login(conf LoginConfig) error {
	conf.setDefaults()
	for i := 0; i < conf.MaxPrompts; i++ {
		text := s.ReadNonEmpty(false)
		switch {
		case conf.UsernamePattern.MatchString(text):
			if !s.WriteLine(conf.Username) {
				return errors.New("telnet: write failed during login")
			}
		case conf.PasswordPattern.MatchString(text):
			if !s.WriteLine(conf.Password) {
				return errors.New("telnet: write failed during login")
			}
		case conf.SuccessPattern.MatchString(text):
			return nil
		case conf.FailurePattern.MatchString(text):
			return ErrLoginFailed
		}
	}
	return errors.New("telnet: no login prompt recognized")
}
