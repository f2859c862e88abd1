package validators

import "net/mail"

// IsEmailValid faz validação sintática do endereço. Não consulta DNS:
// o cadastro não pode depender de resolver disponível.
func IsEmailValid(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
