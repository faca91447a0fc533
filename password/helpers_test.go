package password_test

import (
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/hasbyte1/go-p4ssw0rd/password"
)

// testCost keeps the suite fast.  Production code should use DefaultCost
// or higher.
const testCost = password.MinCost

// naughtyStrings is a sample of inputs known to break naive string
// handling: empty values, whitespace, control bytes, RTL text, emoji,
// combining marks, invalid UTF-8 and injection payloads.
var naughtyStrings = []string{
	"",
	" ",
	"\t\n\r",
	"\x00",
	"\x00admin123",
	"admin123\x00",
	"\x01\x02\x03\x04\x05\x06\x07\x08\x0e\x0f",
	"\u200b",
	"\ufeff",
	"\u202e",
	"\xff\xfe\xfd",
	"\xc3\x28",
	"null",
	"undefined",
	"NaN",
	"-1",
	"0x0",
	"1E+02",
	"$2a$10$",
	"Ω≈ç√∫˜µ≤≥÷",
	"田中さんにあげて下さい",
	"사회과학원 어학연구소",
	"בְּרֵאשִׁית, בָּרָא אֱלֹהִים",
	"مرحبا بالعالم",
	"Ṱ̺̺̕o͞ ̷i̲̬͇̪͙n̝̗͕v̟̜̘̦͟o̶̙̰̠kè͚̮̺̪̹̱̤ ̖t̝͕̳̣̻̪͞h̼͓̲̦̳̘̲e͇̣̰̦̬͎ ̢̼̻̱̘h͚͎͙̜̣̲ͅi̦̲̣̰̤v̻͍e̺̭̳̪̰-m̢iͅn̖̺̞̲̯̰d̵̼̟͙̩̼̘̳",
	"👾 🙇 💁 🙅 🙆 🙋 🙎 🙍",
	"🏳️‍🌈 🇺🇸",
	"<script>alert(123)</script>",
	"'; DROP TABLE users; --",
	"%s%s%s%n",
	"../../../../etc/passwd",
	"Åäö ÅÄÖ",
}

func newTestHasher(tb testing.TB) *password.Hasher {
	tb.Helper()
	h, err := password.New(password.WithCost(testCost))
	if err != nil {
		tb.Fatalf("New: %v", err)
	}
	return h
}

func randomHex(tb testing.TB, n int) string {
	tb.Helper()
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		tb.Fatalf("rand.Read: %v", err)
	}
	return hex.EncodeToString(b)
}
