package jpegcodec

import "sync"

type state int

const (
	stateReady state = iota
	stateEncoding
	stateEncoded
	stateDecoding
	stateDecoded
)

func (s state) String() string {
	switch s {
	case stateReady:
		return "Ready"
	case stateEncoding:
		return "Encoding"
	case stateEncoded:
		return "Encoded"
	case stateDecoding:
		return "Decoding"
	case stateDecoded:
		return "Decoded"
	default:
		return "Unknown"
	}
}

// Pipeline enforces the codec's documented lifecycle —
// Ready->Encoding->Encoded and Encoded->Decoding->Decoded — around the
// stateless Encode/Decode functions, for callers that want the state
// machine's illegal-transition guard rather than calling Encode/Decode
// directly. A zero-value Pipeline starts Ready.
type Pipeline struct {
	mu       sync.Mutex
	state    state
	artifact *Artifact
}

// NewPipeline returns a Pipeline in its initial Ready state.
func NewPipeline() *Pipeline {
	return &Pipeline{state: stateReady}
}

// State reports the pipeline's current lifecycle state.
func (p *Pipeline) State() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.String()
}

// Encode transitions Ready->Encoding->Encoded, running the forward
// pipeline over img. Called from any other state it returns
// ErrIllegalTransition and leaves the pipeline's state untouched.
func (p *Pipeline) Encode(img *Image, quality int, subsampling string) (*Artifact, error) {
	p.mu.Lock()
	if p.state != stateReady {
		p.mu.Unlock()
		return nil, ErrIllegalTransition
	}
	p.state = stateEncoding
	p.mu.Unlock()

	artifact, err := Encode(img, quality, subsampling)

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.state = stateReady
		return nil, err
	}
	p.state = stateEncoded
	p.artifact = artifact
	return artifact, nil
}

// Decode transitions Encoded->Decoding->Decoded, running the inverse
// pipeline over the artifact this Pipeline most recently produced. Called
// before a successful Encode, or while a transition is already in
// flight, it returns ErrIllegalTransition.
func (p *Pipeline) Decode() (*Image, error) {
	p.mu.Lock()
	if p.state != stateEncoded {
		p.mu.Unlock()
		return nil, ErrIllegalTransition
	}
	artifact := p.artifact
	p.state = stateDecoding
	p.mu.Unlock()

	img, err := Decode(artifact)

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.state = stateEncoded
		return nil, err
	}
	p.state = stateDecoded
	return img, nil
}

// Reset returns the pipeline to its Ready state, discarding any held
// artifact, regardless of current state.
func (p *Pipeline) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = stateReady
	p.artifact = nil
}
