package rules

// DefaultFixDomains maps whole misspelled domains to their correction.
// Caller-supplied maps are merged on top of this one; both stay active.
var DefaultFixDomains = map[string]string{
	"gamil.com":      "gmail.com",
	"gmial.com":      "gmail.com",
	"gmaill.com":     "gmail.com",
	"gmal.com":       "gmail.com",
	"gnail.com":      "gmail.com",
	"gmai.com":       "gmail.com",
	"gmailcom":       "gmail.com",
	"gogglemail.com": "googlemail.com",
	"hotmial.com":    "hotmail.com",
	"hotmal.com":     "hotmail.com",
	"hotamil.com":    "hotmail.com",
	"hotmil.com":     "hotmail.com",
	"yaho.com":       "yahoo.com",
	"yahho.com":      "yahoo.com",
	"yahooo.com":     "yahoo.com",
	"yhoo.com":       "yahoo.com",
	"outlok.com":     "outlook.com",
	"outook.com":     "outlook.com",
	"outloo.com":     "outlook.com",
	"iclould.com":    "icloud.com",
	"icoud.com":      "icloud.com",
	"icluod.com":     "icloud.com",
	"protonmial.com": "protonmail.com",
	"aoll.com":       "aol.com",
}

// DefaultFixTlds maps misspelled domain endings to their correction,
// applied as suffix rewrites after the whole-domain fix.
var DefaultFixTlds = map[string]string{
	".con":  ".com",
	".cmo":  ".com",
	".ocm":  ".com",
	".vom":  ".com",
	".comm": ".com",
	".coom": ".com",
	".nte":  ".net",
	".ent":  ".net",
	".nett": ".net",
	".ogr":  ".org",
	".orgg": ".org",
	".og":   ".org",
	".co.u": ".co.uk",
	".couk": ".co.uk",
	".eduu": ".edu",
}

// DefaultCandidates is the built-in pool for fuzzy domain matching.
// Caller candidates are appended, never substituted; order matters for
// tie breaks, so the most common providers come first.
var DefaultCandidates = []string{
	"gmail.com",
	"yahoo.com",
	"hotmail.com",
	"outlook.com",
	"aol.com",
	"icloud.com",
	"live.com",
	"msn.com",
	"me.com",
	"mac.com",
	"googlemail.com",
	"protonmail.com",
	"proton.me",
	"gmx.com",
	"gmx.de",
	"mail.com",
	"zoho.com",
	"yandex.com",
	"fastmail.com",
	"hey.com",
	"yahoo.co.uk",
	"hotmail.co.uk",
	"btinternet.com",
	"comcast.net",
	"verizon.net",
	"att.net",
	"web.de",
	"orange.fr",
	"free.fr",
	"libero.it",
}

// DefaultBlockConfig blocks well-known disposable inbox providers plus
// reserved-looking domains. A caller-supplied config replaces this
// wholesale; the example./test. catch-all in Blocklisted stays active
// either way.
var DefaultBlockConfig = BlockConfig{
	Block: BlockRules{
		Exact: []string{
			"mailinator.com",
			"guerrillamail.com",
			"10minutemail.com",
			"yopmail.com",
			"trashmail.com",
			"dispostable.com",
			"sharklasers.com",
			"fakeinbox.com",
			"maildrop.cc",
			"getnada.com",
			"temp-mail.org",
			"discard.email",
		},
		Suffix: []string{
			".invalid",
			".localhost",
		},
		Wildcard: []string{
			"tempmail*",
			"temp-mail*",
			"*.mailinator.com",
		},
		TLDs: []string{
			".test",
			".example",
			".invalid",
		},
	},
}
