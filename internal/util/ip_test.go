package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnonymizeIPMasksIPv4LastOctet(t *testing.T) {
	assert.Equal(t, "203.0.113.0", AnonymizeIP("203.0.113.77"))
	assert.Equal(t, "10.0.0.0", AnonymizeIP("10.0.0.1"))
	assert.Equal(t, "192.168.1.0", AnonymizeIP("192.168.1.255"))
}

func TestAnonymizeIPKeepsIPv6Prefix(t *testing.T) {
	assert.Equal(t, "2001:db8:85a3::", AnonymizeIP("2001:db8:85a3::8a2e:370:7334"))
	assert.Equal(t, "::", AnonymizeIP("::1"))
}

func TestAnonymizeIPRejectsMalformedInput(t *testing.T) {
	assert.Equal(t, "", AnonymizeIP(""))
	assert.Equal(t, "", AnonymizeIP("not-an-ip"))
	assert.Equal(t, "", AnonymizeIP("300.1.2.3"))
}
