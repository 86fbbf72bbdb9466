package normalize

// ChangeCode is a machine-readable tag recording which normalisation
// stage fired. The set is closed; each code has exactly one
// human-readable reason.
type ChangeCode string

const (
	CodeEmpty                          ChangeCode = "EMPTY"
	CodeBlockedByList                  ChangeCode = "BLOCKED_BY_LIST"
	CodeDeobfuscatedAtAndDot           ChangeCode = "DEOBFUSCATED_AT_AND_DOT"
	CodeFixedDomainAndTldTypos         ChangeCode = "FIXED_DOMAIN_AND_TLD_TYPOS"
	CodeFuzzyDomainCorrection          ChangeCode = "FUZZY_DOMAIN_CORRECTION"
	CodeInvalidEmailShape              ChangeCode = "INVALID_EMAIL_SHAPE"
	CodeLowercasedDomain               ChangeCode = "LOWERCASED_DOMAIN"
	CodeNormalisedUnicodeSymbols       ChangeCode = "NORMALISED_UNICODE_SYMBOLS"
	CodeStrippedDisplayNameAndComments ChangeCode = "STRIPPED_DISPLAY_NAME_AND_COMMENTS"
	CodeTidiedPunctuationAndSpacing    ChangeCode = "TIDIED_PUNCTUATION_AND_SPACING"
	CodeConvertedToASCII               ChangeCode = "CONVERTED_TO_ASCII"
)

// Reason returns the fixed human-readable description for a code, or ""
// for a code outside the closed set.
func (c ChangeCode) Reason() string {
	switch c {
	case CodeEmpty:
		return "Input was empty"
	case CodeBlockedByList:
		return "Domain is on the blocklist"
	case CodeDeobfuscatedAtAndDot:
		return "Replaced obfuscated 'at' and 'dot' markers"
	case CodeFixedDomainAndTldTypos:
		return "Fixed known domain and TLD typos"
	case CodeFuzzyDomainCorrection:
		return "Corrected domain to a close known provider"
	case CodeInvalidEmailShape:
		return "Result does not look like an email address"
	case CodeLowercasedDomain:
		return "Lowercased the domain"
	case CodeNormalisedUnicodeSymbols:
		return "Replaced unicode look-alike symbols"
	case CodeStrippedDisplayNameAndComments:
		return "Stripped display name and comments"
	case CodeTidiedPunctuationAndSpacing:
		return "Tidied punctuation and spacing"
	case CodeConvertedToASCII:
		return "Converted to ASCII characters"
	}
	return ""
}
