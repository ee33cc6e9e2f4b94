package x12

import (
	"context"
	"errors"
	"fmt"

	"github.com/dshills/x12/bind"
	"github.com/dshills/x12/envelope"
	"github.com/dshills/x12/model"
	"github.com/dshills/x12/schema"
	"github.com/dshills/x12/tokenize"
	"github.com/dshills/x12/x837"
)

// ErrContextCanceled is returned when the parsing context is canceled.
var ErrContextCanceled = errors.New("x12: parsing canceled")

// envelopeSegmentNames are the six control segments that frame
// interchanges, groups, and transaction sets. None of them carries a
// content schema (x837's schema table registers only segments that appear
// inside a transaction set), so Parse builds them directly from their raw
// wire fields instead of running them through schema.Decode, which would
// otherwise report a spurious KindUnknownSegment diagnostic for every one
// of them.
var envelopeSegmentNames = map[string]bool{
	"ISA": true, "GS": true, "ST": true, "SE": true, "GE": true, "IEA": true,
}

// Parser parses raw X12 byte data into a Document.
type Parser interface {
	// Parse parses a byte buffer containing one or more whole interchanges.
	Parse(data []byte) (*Document, []*model.Error, error)

	// ParseContext does the same, checking ctx for cancellation at segment
	// boundaries so a caller can abort a large parse in progress.
	ParseContext(ctx context.Context, data []byte) (*Document, []*model.Error, error)
}

// parser is the concrete implementation of Parser.
type parser struct {
	cfg   config
	table schema.Table
	rules bind.Registry
}

// New creates a new Parser with the given options, wired to the 837
// Professional schema and rule registry.
func New(opts ...Option) Parser {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &parser{cfg: cfg, table: x837.Schema(), rules: x837.Rules()}
}

// Parse parses raw X12 data into a Document.
func (p *parser) Parse(data []byte) (*Document, []*model.Error, error) {
	return p.ParseContext(context.Background(), data)
}

// ParseContext parses raw X12 data with context support.
func (p *parser) ParseContext(ctx context.Context, data []byte) (*Document, []*model.Error, error) {
	select {
	case <-ctx.Done():
		return nil, nil, fmt.Errorf("%w: %v", ErrContextCanceled, ctx.Err())
	default:
	}

	rawSegs, delims, err := tokenize.All(data,
		tokenize.WithMaxSegments(p.cfg.maxSegments),
		tokenize.WithMaxFieldLength(p.cfg.maxFieldLength),
	)
	if err != nil {
		return nil, nil, err
	}

	decodeCfg := schema.DecodeConfig{StrictMode: p.cfg.strictMode, CenturyPivot: p.cfg.centuryPivot}

	segs := make([]model.Segment, len(rawSegs))
	var diags []*model.Error
	for i, raw := range rawSegs {
		if i%100 == 0 {
			select {
			case <-ctx.Done():
				return nil, diags, fmt.Errorf("%w: %v", ErrContextCanceled, ctx.Err())
			default:
			}
		}

		if envelopeSegmentNames[raw.Name] {
			segs[i] = model.Segment{Name: raw.Name, Index: raw.Index, Delims: delims, Raw: raw.Fields}
			continue
		}

		seg, segDiags := schema.Decode(raw, delims, p.table, decodeCfg)
		segs[i] = seg
		diags = append(diags, segDiags...)
		for _, d := range segDiags {
			if d.Fatal() {
				return nil, diags, d
			}
		}
	}

	// Envelope errors always abort parsing and discard the partial tree
	// (§7), independent of strict mode.
	if envDiags := envelope.Validate(segs); len(envDiags) > 0 {
		diags = append(diags, envDiags...)
		return nil, diags, envDiags[0]
	}

	doc, bindDiags, err := p.assemble(segs, diags)
	diags = append(diags, bindDiags...)
	if err != nil {
		return nil, diags, err
	}
	return doc, diags, nil
}

// assemble partitions a flat, decoded segment stream into Interchanges,
// Groups, and Transactions, binding each ST...SE span as it completes.
// Envelope soundness (matching ISA/IEA, GS/GE, correctly nested ST/SE) has
// already been confirmed by envelope.Validate by the time assemble runs, so
// this pass trusts the nesting and focuses purely on building the tree.
func (p *parser) assemble(segs []model.Segment, schemaDiags []*model.Error) (*Document, []*model.Error, error) {
	var doc Document
	var diags []*model.Error

	binderOpts := []bind.Option{
		bind.WithStrictMode(p.cfg.strictMode),
		bind.WithLogger(p.cfg.logger),
	}
	if p.cfg.permitted != nil {
		binderOpts = append(binderOpts, bind.WithPermittedSegments(p.cfg.permitted))
	}
	binder := bind.New(p.rules, binderOpts...)

	interchangeIdx := -1
	groupIdx := -1
	txnStart := -1

	for i, seg := range segs {
		switch seg.Name {
		case "ISA":
			doc.Interchanges = append(doc.Interchanges, Interchange{Header: seg, Delimiters: seg.Delims})
			interchangeIdx = len(doc.Interchanges) - 1
			groupIdx = -1

		case "GS":
			if interchangeIdx < 0 {
				continue
			}
			ic := &doc.Interchanges[interchangeIdx]
			ic.Groups = append(ic.Groups, Group{Header: seg})
			groupIdx = len(ic.Groups) - 1

		case "ST":
			txnStart = i

		case "SE":
			if txnStart < 0 || interchangeIdx < 0 || groupIdx < 0 {
				continue
			}
			span := segs[txnStart : i+1]
			root, bindDiags, err := binder.Bind(span)
			diags = append(diags, bindDiags...)
			if err != nil {
				return nil, diags, err
			}
			var txnDiags []*model.Error
			for _, d := range schemaDiags {
				if d.SegmentIndex >= segs[txnStart].Index && d.SegmentIndex <= seg.Index {
					txnDiags = append(txnDiags, d)
				}
			}
			txnDiags = append(txnDiags, bindDiags...)
			group := &doc.Interchanges[interchangeIdx].Groups[groupIdx]
			group.Transactions = append(group.Transactions, Transaction{Root: root, Diagnostics: txnDiags})
			txnStart = -1

		case "GE":
			if interchangeIdx < 0 || groupIdx < 0 {
				continue
			}
			doc.Interchanges[interchangeIdx].Groups[groupIdx].Trailer = seg

		case "IEA":
			if interchangeIdx < 0 {
				continue
			}
			doc.Interchanges[interchangeIdx].Trailer = seg
		}
	}

	return &doc, diags, nil
}

// IsX12Data reports whether data looks like an X12 interchange: its first
// three non-whitespace bytes are "ISA" (§6).
func IsX12Data(data []byte) bool {
	return tokenize.IsX12Data(data)
}
