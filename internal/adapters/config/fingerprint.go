package config

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/starview/internal/core/domain"
)

// fingerprinter feeds length-prefixed strings and raw float bits into xxhash,
// so formatting differences in the YAML source do not change the result.
type fingerprinter struct {
	d   *xxhash.Digest
	buf [8]byte
}

func newFingerprinter() *fingerprinter {
	return &fingerprinter{d: xxhash.New()}
}

func (f *fingerprinter) writeUint(v uint64) {
	binary.LittleEndian.PutUint64(f.buf[:], v)
	_, _ = f.d.Write(f.buf[:])
}

func (f *fingerprinter) writeFloat(v float64) {
	f.writeUint(math.Float64bits(v))
}

func (f *fingerprinter) writeString(s string) {
	f.writeUint(uint64(len(s)))
	_, _ = f.d.WriteString(s)
}

func datasetFingerprint(ds *domain.Dataset) uint64 {
	f := newFingerprinter()
	f.writeString(ds.Star)
	f.writeUint(uint64(len(ds.Observations)))
	for i := range ds.Observations {
		obs := &ds.Observations[i]
		f.writeFloat(obs.Time)
		f.writeFloat(obs.Magnitude)
		f.writeFloat(obs.Uncertainty)
		f.writeString(obs.Band)
		f.writeString(string(obs.TimeSystem))
	}
	return f.d.Sum64()
}

func sessionFingerprint(s *domain.Session) uint64 {
	f := newFingerprinter()
	f.writeUint(s.Dataset.Fingerprint)

	f.writeUint(uint64(len(s.Models)))
	for _, m := range s.Models {
		f.writeString(string(m.Kind))
		f.writeUint(uint64(m.Degree)) //nolint:gosec // degree is validated non-negative
	}

	if s.Phase != nil {
		f.writeString("phase")
		f.writeFloat(s.Phase.Epoch)
		f.writeFloat(s.Phase.Period)
	}

	if s.Binning != nil {
		f.writeString("binning")
		f.writeFloat(s.Binning.Size)
	}

	return f.d.Sum64()
}
