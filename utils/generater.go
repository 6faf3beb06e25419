package utils

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// GenerateOTP returns a 6-digit one-time passcode
func GenerateOTP() string {
	var b [8]byte
	rand.Read(b[:])
	num := binary.LittleEndian.Uint64(b[:]) % 1000000
	return fmt.Sprintf("%06d", num)
}
