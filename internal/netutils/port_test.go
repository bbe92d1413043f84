package netutils

import (
	"net"
	"strconv"
	"testing"

	. "github.com/onsi/gomega"
)

func TestFreePort(t *testing.T) {
	g := NewWithT(t)

	p, err := FreePort("127.0.0.1")
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(p).To(BeNumerically(">", 0))

	l, err := net.Listen("tcp", "127.0.0.1:"+strconv.Itoa(p))
	g.Expect(err).ToNot(HaveOccurred())
	defer l.Close()

	got, err := ListenPort(l)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(got).To(Equal(p))
}

func TestFreePort_Negative(t *testing.T) {
	g := NewWithT(t)

	_, err := FreePort("256.0.0.1")
	g.Expect(err).To(MatchError(ContainSubstring("failed to listen on 256.0.0.1")))
}
