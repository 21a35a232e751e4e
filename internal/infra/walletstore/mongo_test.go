//go:build unit

package walletstore

import (
	"testing"

	"cozycup/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelloReply_Transactional(t *testing.T) {
	tests := []struct {
		name  string
		reply helloReply
		want  bool
	}{
		{"OK: replica set member", helloReply{SetName: "rs0"}, true},
		{"OK: sharded router", helloReply{Msg: "isdbgrid"}, true},
		{"NG: standalone", helloReply{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.reply.transactional())
		})
	}
}

func TestPurchaseDoc(t *testing.T) {
	p := builder.NewPurchaseBuilder().WithCredits(3).Build()
	require.NoError(t, p.Debit(builder.BaseTime))

	t.Run("OK: keeps balance and version", func(t *testing.T) {
		got, err := toPurchaseDoc(p).toDomain()

		require.NoError(t, err)
		assert.Equal(t, p, got)
	})

	t.Run("NG: corrupt id", func(t *testing.T) {
		doc := toPurchaseDoc(p)
		doc.CustomerID = "not-a-uuid"

		_, err := doc.toDomain()

		assert.Error(t, err)
	})
}
