package utils

import (
	"math/rand"
)

// InviteCodeLength taille des codes d'invitation de groupe
const InviteCodeLength = 6

const inviteCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateInviteCode génère un code d'invitation alphanumérique majuscule.
// L'unicité est garantie par l'appelant (retry sur collision).
func GenerateInviteCode() string {
	code := make([]byte, InviteCodeLength)
	for i := range code {
		code[i] = inviteCharset[rand.Intn(len(inviteCharset))]
	}
	return string(code)
}
