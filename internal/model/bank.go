package model

import (
	"fmt"
	"strings"
)

// Bank identifies the issuer of a statement.
type Bank string

const (
	BankSBI     Bank = "SBI"
	BankHDFC    Bank = "HDFC"
	BankICICI   Bank = "ICICI"
	BankAxis    Bank = "AXIS"
	BankPNB     Bank = "PNB"
	BankKotak   Bank = "KOTAK"
	BankBOB     Bank = "BOB"
	BankUnion   Bank = "UNION"
	BankCanara  Bank = "CANARA"
	BankGeneric Bank = "GENERIC" // no issuer signature matched
)

// Banks lists every known identity, GENERIC last.
var Banks = []Bank{
	BankSBI, BankHDFC, BankICICI, BankAxis, BankPNB,
	BankKotak, BankBOB, BankUnion, BankCanara, BankGeneric,
}

// ParseBank converts a tag such as "hdfc" into a Bank.
func ParseBank(s string) (Bank, error) {
	want := Bank(strings.ToUpper(strings.TrimSpace(s)))
	for _, b := range Banks {
		if b == want {
			return b, nil
		}
	}
	return "", fmt.Errorf("unknown bank %q", s)
}
