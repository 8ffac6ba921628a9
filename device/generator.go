package device

import (
	crand "crypto/rand"
	"io"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Generator builds random Profiles. The zero value is not usable.
type Generator struct {
	intN    func(n int) int
	entropy io.Reader
}

// NewGenerator returns a Generator backed by the runtime random source and
// crypto/rand for device identifiers.
func NewGenerator() *Generator {
	return &Generator{
		intN:    rand.IntN,
		entropy: crand.Reader,
	}
}

// NewSeededGenerator returns a Generator whose output is fully determined by seed.
func NewSeededGenerator(seed [32]byte) *Generator {
	src := rand.NewChaCha8(seed)
	return &Generator{
		intN:    rand.New(src).IntN,
		entropy: src,
	}
}

// Random picks Android or iOS with equal probability.
func (g *Generator) Random() *Profile {
	if g.intN(2) == 0 {
		return g.Android()
	}
	return g.IOS()
}

func (g *Generator) Android() *Profile {
	p := &Profile{
		Platform:      Android,
		OAuthClientID: AndroidOAuthClientID,
		DeviceID:      g.newID(),
		UserAgent:     AndroidUserAgents[g.intN(len(AndroidUserAgents))],
	}
	logProfile(p)
	return p
}

func (g *Generator) IOS() *Profile {
	p := &Profile{
		Platform:      IOS,
		OAuthClientID: IOSOAuthClientID,
		DeviceID:      g.newID(),
		UserAgent:     IOSUserAgents[g.intN(len(IOSUserAgents))],
		Model:         IOSModels[g.intN(len(IOSModels))],
	}
	logProfile(p)
	return p
}

func (g *Generator) newID() string {
	return uuid.Must(uuid.NewRandomFromReader(g.entropy)).String()
}

func logProfile(p *Profile) {
	ev := log.Info().
		Stringer("platform", p.Platform).
		Str("device_id", p.DeviceID).
		Str("user_agent", p.UserAgent).
		Str("oauth_client_id", p.OAuthClientID)
	if p.Model != "" {
		ev = ev.Str("model", p.Model)
	}
	ev.Msg("Spoofing mobile client")
}
