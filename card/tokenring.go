package card

// WordTransport is the TokenRing side of a TokenRingCard.
type WordTransport interface {
	Receive(size int) ([]uint32, error)
	Send(data []uint32) error
}

// TokenRingCard adapts a TokenRing transport to a Card, converting between
// bytes and big-endian words.
type TokenRingCard struct {
	TokenRing WordTransport
}

var _ Card = (*TokenRingCard)(nil)

// NewTokenRingCard wraps tr.
func NewTokenRingCard(tr WordTransport) *TokenRingCard {
	return &TokenRingCard{TokenRing: tr}
}

// Receive reads size words from the token ring and returns them as
// 4*size bytes. The size is in the transport's own unit, words.
func (tc *TokenRingCard) Receive(size int) (data []byte, err error) {
	words, err := tc.TokenRing.Receive(size)
	if err != nil {
		return
	}

	data = DecodeWords(words)

	return
}

// Send packs data into words and sends them all.
func (tc *TokenRingCard) Send(data []byte) error {
	return tc.TokenRing.Send(EncodeWords(data))
}

func (tc *TokenRingCard) Name() string {
	return "TokenRing"
}
