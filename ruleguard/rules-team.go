//go:build ruleguard
// +build ruleguard

package gorules

import "github.com/quasilyte/go-ruleguard/dsl"

// Team rules that upstream tooling and Go culture won't enforce for us.
// Stdlib packages are pre-loaded in ruleguard's import table, so patterns can
// use: json, http, strconv, context, url, etc.

func receiverNameMinLength(m dsl.Matcher) {
	// Enforce: receiver identifier must not be 1 character.
	isSingleChar := func(v dsl.Var) bool {
		return v.Text.Matches(`^[a-zA-Z]$`) && !v.Text.Matches(`^t$`)
	}

	m.Match(`func ($recv $recvType) $name($*args) $*results { $*_ }`).
		Where(isSingleChar(m["recv"])).
		Report(`receiver name must be a meaningful, domain-compliant name (min 2 characters); avoid single-letter receivers`)
}

func forbidIgnoringJSONDecodeError(m dsl.Matcher) {
	// An API client must never treat malformed JSON as success.
	isBlankIdent := func(v dsl.Var) bool {
		return v.Text.Matches(`^_$`)
	}

	m.Import(`encoding/json`)
	m.Match(`$err = json.NewDecoder($r).Decode($v)`).
		Where(isBlankIdent(m["err"])).
		Report(`must check json.Decode error and return/propagate it (do not treat a malformed response as success)`)
	m.Match(`$err = json.Unmarshal($data, $v)`).
		Where(isBlankIdent(m["err"])).
		Report(`must check json.Unmarshal error and return/propagate it (do not treat a malformed response as success)`)
}

func forbidIgnoringHTTPRequestBuildError(m dsl.Matcher) {
	// Disallow: `req, _ := http.NewRequestWithContext(...)`.
	isBlankIdent := func(v dsl.Var) bool {
		return v.Text.Matches(`^_$`)
	}

	m.Import(`net/http`)
	m.Match(`$req, $err = http.NewRequestWithContext($ctx, $method, $url, $body)`).
		Where(isBlankIdent(m["err"])).
		Report(`must check http.NewRequestWithContext error and return/propagate it (invalid URL/context must fail loudly)`)
	m.Match(`$req, $err := http.NewRequestWithContext($ctx, $method, $url, $body)`).
		Where(isBlankIdent(m["err"])).
		Report(`must check http.NewRequestWithContext error and return/propagate it (invalid URL/context must fail loudly)`)
}

func forbidContextlessRequests(m dsl.Matcher) {
	// Every request must carry a caller context so timeouts and cancellation
	// propagate through the rate-limited client.
	m.Import(`net/http`)
	m.Match(`http.NewRequest($method, $url, $body)`).
		Report(`use http.NewRequestWithContext so cancellation and timeouts propagate`)
	m.Match(`http.Get($url)`).
		Report(`route requests through the rate-limited client with a context instead of http.Get`)
}
