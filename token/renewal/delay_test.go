package renewal_test

import (
	"math"
	"testing"
	"time"

	"github.com/jrsteele09/go-token-spoof/internal/errors"
	"github.com/jrsteele09/go-token-spoof/token/renewal"
	"github.com/stretchr/testify/assert"
)

func TestNextDelay(t *testing.T) {
	tests := []struct {
		name      string
		expiresIn uint64
		want      time.Duration
		wantErr   error
	}{
		{name: "one hour", expiresIn: 3600, want: 3480 * time.Second},
		{name: "one day", expiresIn: 86400, want: 86280 * time.Second},
		{name: "equal to margin", expiresIn: 120, want: 30 * time.Second, wantErr: errors.ErrShortLivedToken},
		{name: "below margin", expiresIn: 60, want: 30 * time.Second, wantErr: errors.ErrShortLivedToken},
		{name: "zero", expiresIn: 0, want: 30 * time.Second, wantErr: errors.ErrShortLivedToken},
		{name: "just above margin", expiresIn: 121, want: 30 * time.Second},
		{name: "huge", expiresIn: math.MaxUint64, want: time.Duration(math.MaxInt64/int64(time.Second))*time.Second - 2*time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := renewal.NextDelay(tt.expiresIn, renewal.DefaultMargin, renewal.DefaultMinDelay)
			assert.Equal(t, tt.want, got)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
