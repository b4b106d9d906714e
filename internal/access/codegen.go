package access

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// без похожих символов (0/O, 1/I/L), чтобы коды удобно диктовать
const codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const codeLength = 8

// GenerateCodes выпускает n новых кодов вида PREFIX-XXXXXXXX.
// Уникальность окончательно гарантирует первичный ключ в БД.
func GenerateCodes(n int, prefix string) []string {
	prefix = strings.ToUpper(strings.TrimSpace(prefix))
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		var b strings.Builder
		if prefix != "" {
			b.WriteString(prefix)
			b.WriteByte('-')
		}
		for j := 0; j < codeLength; j++ {
			idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeAlphabet))))
			if err != nil {
				panic(fmt.Sprintf("crypto/rand: %v", err))
			}
			b.WriteByte(codeAlphabet[idx.Int64()])
		}
		out = append(out, b.String())
	}
	return out
}
