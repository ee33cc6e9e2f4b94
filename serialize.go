package x12

import (
	"strings"

	"github.com/dshills/x12/model"
	"github.com/dshills/x12/serialize"
	"github.com/dshills/x12/x837"
)

// Serialize renders doc back to wire-format bytes: each interchange's ISA,
// its groups' GS, each transaction's bound content (rendered through the
// 837 schema, the same one it was decoded with), then GE and IEA in turn.
// Envelope segments round-trip from their raw wire fields; only
// transaction content is re-rendered from typed values.
func (doc *Document) Serialize(opts ...Option) ([]byte, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var b strings.Builder
	wroteAny := false
	writeSeg := func(seg model.Segment, delims model.Delimiters) {
		if wroteAny && cfg.useNewLinesOnEmit {
			b.WriteByte('\n')
		}
		wroteAny = true
		if cfg.delimiters != nil {
			delims = *cfg.delimiters
		}
		b.Write(seg.Bytes(delims))
	}

	for _, ic := range doc.Interchanges {
		delims := ic.Delimiters
		txnDelims := delims
		if cfg.delimiters != nil {
			txnDelims = *cfg.delimiters
		}
		txnSerializer := serialize.New(x837.Schema(),
			serialize.WithDelimiters(txnDelims),
			serialize.WithUseNewLinesOnEmit(cfg.useNewLinesOnEmit),
		)

		writeSeg(ic.Header, delims)
		for _, g := range ic.Groups {
			writeSeg(g.Header, delims)
			for _, txn := range g.Transactions {
				rendered, err := txnSerializer.Serialize(txn.Root)
				if err != nil {
					return nil, err
				}
				if wroteAny && cfg.useNewLinesOnEmit {
					b.WriteByte('\n')
				}
				wroteAny = true
				b.Write(rendered)
			}
			writeSeg(g.Trailer, delims)
		}
		writeSeg(ic.Trailer, delims)
	}

	return []byte(b.String()), nil
}
