package telnet

import "fmt"

// Telnet command bytes. EOR is from RFC 885, the rest from RFC 854.
const (
	EOR = 239 + iota
	SE
	NOP
	DM
	BRK
	IP
	AO
	AYT
	EC
	EL
	GA
	SB
	WILL
	WONT
	DO
	DONT
	IAC
)

// Telnet option codes.
const (
	TransmitBinary  = 0 // RFC 856
	Echo            = 1 // RFC 857
	SuppressGoAhead = 3 // RFC 858
)

type commandByte byte

func (c commandByte) String() string {
	str, ok := map[commandByte]string{
		AO:   "AO",
		AYT:  "AYT",
		BRK:  "BRK",
		DM:   "DM",
		DO:   "DO",
		DONT: "DONT",
		EC:   "EC",
		EL:   "EL",
		EOR:  "EOR",
		GA:   "GA",
		IAC:  "IAC",
		IP:   "IP",
		NOP:  "NOP",
		SB:   "SB",
		SE:   "SE",
		WILL: "WILL",
		WONT: "WONT",
	}[c]
	if ok {
		return str
	}
	return fmt.Sprintf("%d", c)
}

type optionByte byte

func (c optionByte) String() string {
	str, ok := map[optionByte]string{
		Echo:            "ECHO",
		SuppressGoAhead: "SUPPRESS-GO-AHEAD",
		TransmitBinary:  "TRANSMIT-BINARY",
	}[c]
	if ok {
		return str
	}
	return fmt.Sprintf("%d", c)
}
