package fetchback_test

import (
	"testing"

	"github.com/fetchback/fetchback"
)

func TestLookup(t *testing.T) {
	if b := fetchback.Lookup("postgres"); b != fetchback.PostgreSQL {
		t.Fatalf("got %v, wanted PostgreSQL", b)
	}
	if b := fetchback.Lookup("oracle"); b != nil {
		t.Fatalf("got %v, wanted nil", b)
	}
}

func TestFeatures(t *testing.T) {
	tests := []struct {
		backend        *fetchback.Backend
		returning      bool
		defaultKeyword bool
	}{
		{fetchback.PostgreSQL, true, true},
		{fetchback.CockroachDB, true, true},
		{fetchback.SQLite, true, false},
		{fetchback.MySQL, false, true},
		{fetchback.MariaDB, true, true},
	}
	for _, test := range tests {
		if got := test.backend.Has(fetchback.FeatureReturning); got != test.returning {
			t.Fatalf("%s: returning=%v, wanted %v", test.backend.Name(), got, test.returning)
		}
		if got := test.backend.Has(fetchback.FeatureDefaultKeyword); got != test.defaultKeyword {
			t.Fatalf("%s: default keyword=%v, wanted %v", test.backend.Name(), got, test.defaultKeyword)
		}
	}
}

func TestQuoteIdent(t *testing.T) {
	tests := []struct {
		backend *fetchback.Backend
		ident   string
		want    string
	}{
		{fetchback.PostgreSQL, "users", `"users"`},
		{fetchback.PostgreSQL, `we"ird`, `"we""ird"`},
		{fetchback.MySQL, "users", "`users`"},
	}
	for _, test := range tests {
		if got := string(test.backend.QuoteIdent(nil, test.ident)); got != test.want {
			t.Fatalf("%s: got %s, wanted %s", test.backend.Name(), got, test.want)
		}
	}
}

func TestQuoteBytes(t *testing.T) {
	if got := string(fetchback.PostgreSQL.QuoteBytes(nil, []byte("hi"))); got != `'\x6869'` {
		t.Fatalf("got %s", got)
	}
	if got := string(fetchback.MySQL.QuoteBytes(nil, []byte("hi"))); got != "X'6869'" {
		t.Fatalf("got %s", got)
	}
}

func TestDecisionString(t *testing.T) {
	tests := map[fetchback.Decision]string{
		fetchback.None:               "none",
		fetchback.Returning:          "returning",
		fetchback.PreExecute:         "pre_execute",
		fetchback.PostSelect:         "post_select",
		fetchback.PostSelectDeferred: "post_select_deferred",
		fetchback.Decision(42):       "unknown",
	}
	for d, want := range tests {
		if d.String() != want {
			t.Fatalf("got %s, wanted %s", d.String(), want)
		}
	}
}
