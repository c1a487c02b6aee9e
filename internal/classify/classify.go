// Package classify identifies the issuing bank of a statement from its text.
package classify

import (
	"fmt"
	"strings"

	"github.com/cloudflare/ahocorasick"
	"github.com/rs/zerolog/log"

	"github.com/cleared-dev/passbook/internal/layout"
	"github.com/cleared-dev/passbook/internal/model"
	"github.com/cleared-dev/passbook/internal/pdfdoc"
)

// DetectPages is how many leading pages are scanned for a signature.
const DetectPages = 2

type signature struct {
	needle string
	bank   model.Bank
}

// signatures are checked in order; the first one present wins.
var signatures = []signature{
	{"state bank of india", model.BankSBI},
	{"sbi", model.BankSBI},
	{"hdfc bank", model.BankHDFC},
	{"icici bank", model.BankICICI},
	{"axis bank", model.BankAxis},
	{"punjab national bank", model.BankPNB},
	{"pnb", model.BankPNB},
	{"kotak mahindra bank", model.BankKotak},
	{"bank of baroda", model.BankBOB},
	{"union bank", model.BankUnion},
	{"canara bank", model.BankCanara},
}

// matcher is shared by every Classify call. Match mutates the matcher's
// internal state, so Classify must not be called concurrently.
var matcher = func() *ahocorasick.Matcher {
	needles := make([]string, len(signatures))
	for i, s := range signatures {
		needles[i] = s.needle
	}
	return ahocorasick.NewStringMatcher(needles)
}()

// Classify returns the bank whose signature appears in text. text is
// expected to be lower-cased already. Unknown text yields BankGeneric.
// It is not safe for concurrent use.
func Classify(text string) model.Bank {
	hits := matcher.Match([]byte(text))
	if len(hits) == 0 {
		return model.BankGeneric
	}
	first := hits[0]
	for _, h := range hits[1:] {
		if h < first {
			first = h
		}
	}
	return signatures[first].bank
}

// Detect classifies the first DetectPages pages of src.
func Detect(src pdfdoc.PageSource, opts layout.Options) (model.Bank, error) {
	if src.NumPages() == 0 {
		return model.BankGeneric, nil
	}
	text, err := pdfdoc.Text(src, DetectPages, opts)
	if err != nil {
		return "", fmt.Errorf("reading statement text: %w", err)
	}
	bank := Classify(strings.ToLower(text))
	log.Debug().Str("bank", string(bank)).Int("chars", len(text)).Msg("classified statement")
	return bank, nil
}

// DetectFile opens the PDF at path and classifies it.
func DetectFile(path string, opts layout.Options) (model.Bank, error) {
	doc, err := pdfdoc.Open(path)
	if err != nil {
		return "", err
	}
	defer doc.Close()
	return Detect(doc, opts)
}
