package validators

import (
	"net"
	"strings"
)

// Normalize padroniza o email antes de persistir ou comparar.
func Normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsEmailDomainValid faz uma checagem barata de entregabilidade:
// o domínio precisa resolver MX ou, na falta, um registro A/AAAA.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	if strings.Contains(domain, " ") || !strings.Contains(domain, ".") {
		return false
	}

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
