package port

// Utoa formats n in decimal without pulling in fmt.
func Utoa(n uint32) string {
	if n == 0 {
		return "0"
	}
	var buf [10]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

const hexDigits = "0123456789ABCDEF"

// hex8 formats v as two upper-case hex digits.
func hex8(v uint8) string {
	return string([]byte{hexDigits[v>>4], hexDigits[v&0xF]})
}
