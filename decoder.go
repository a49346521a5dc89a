// Copyright 2017-25 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package osmx reads OpenStreetMap XML extracts and decodes them into the
// immutable entity model of the model package.  Decoding is streaming: the
// document is never materialized as a tree, and entities become available
// as the underlying reader advances.
package osmx

import (
	"bufio"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/destel/rill"

	"m4o.io/osmx/model"
)

// Decoder reads and decodes OpenStreetMap XML data from an input stream.
type Decoder struct {
	// Header holds the attributes of the osm root element, plus the
	// bounding box when the document leads with a bounds child.
	Header model.Header

	cfg *decoderOptions
	xml *xml.Decoder

	// first entity token scanned while locating the header, replayed by
	// the background loop
	pending xml.Token

	decoded chan rill.Try[[]model.Entity]
	done    chan struct{}
	close   sync.Once
}

// NewDecoder returns a new decoder, configured with options, that reads from
// rdr.  The decoder is initialized with the OSM header; entity decoding then
// proceeds in the background until the stream is exhausted, the context is
// canceled, or Close is called.
func NewDecoder(ctx context.Context, rdr io.Reader, opts ...DecoderOption) (*Decoder, error) {
	cfg := defaultDecoderConfig

	for _, opt := range opts {
		opt(&cfg)
	}

	d := &Decoder{
		cfg:     &cfg,
		xml:     xml.NewDecoder(bufio.NewReaderSize(rdr, cfg.readBufferSize)),
		decoded: make(chan rill.Try[[]model.Entity], cfg.channelLength),
		done:    make(chan struct{}),
	}

	if err := d.readHeader(); err != nil {
		return nil, err
	}

	go d.run(ctx)

	return d, nil
}

// Decode returns the next batch of decoded entities, in document order
// within each entity kind.  The end of the input stream is reported by an
// io.EOF error.  Any validation or syntax failure terminates decoding; the
// failure is returned once and subsequent calls report io.EOF.
func (d *Decoder) Decode() ([]model.Entity, error) {
	decoded, more := <-d.decoded
	if !more {
		return nil, io.EOF
	}

	if decoded.Error != nil {
		return nil, decoded.Error
	}

	return decoded.Value, nil
}

// Close cancels the background decoding pipeline.  It is safe to call Close
// more than once.
func (d *Decoder) Close() {
	d.close.Do(func() {
		close(d.done)
	})
}

// readHeader consumes tokens up to and including the osm start element and,
// when present, a leading bounds child.  The first token belonging to an
// entity is stashed for the background loop.
func (d *Decoder) readHeader() error {
	root, err := d.nextElement()
	if err != nil {
		return fmt.Errorf("read osm header: %w", err)
	}

	se, ok := root.(xml.StartElement)
	if !ok || se.Name.Local != "osm" {
		return fmt.Errorf("expected osm root element but got %v", root)
	}

	d.Header = model.Header{
		Version:     optionalAttr(se, "version", ""),
		Generator:   optionalAttr(se, "generator", ""),
		Copyright:   optionalAttr(se, "copyright", ""),
		Attribution: optionalAttr(se, "attribution", ""),
		License:     optionalAttr(se, "license", ""),
	}

	next, err := d.nextElement()
	if err != nil {
		if err == io.EOF {
			// an osm element with no content at all
			return nil
		}

		return fmt.Errorf("read osm header: %w", err)
	}

	if bounds, ok := next.(xml.StartElement); ok && bounds.Name.Local == "bounds" {
		if d.Header.BoundingBox, err = parseBounds(bounds); err != nil {
			return err
		}

		if err := d.xml.Skip(); err != nil {
			return fmt.Errorf("read osm header: %w", err)
		}

		return nil
	}

	d.pending = next

	return nil
}

// nextElement returns the next structural token, skipping character data,
// comments, and processing instructions.
func (d *Decoder) nextElement() (xml.Token, error) {
	for {
		tok, err := d.xml.Token()
		if err != nil {
			return nil, err
		}

		switch tok.(type) {
		case xml.StartElement, xml.EndElement:
			return tok, nil
		}
	}
}

// run is the background decoding loop.  It folds the token stream into
// entity batches and publishes them on the decoded channel.  The first
// failure of any kind is terminal for the whole parse.
func (d *Decoder) run(ctx context.Context) {
	defer close(d.decoded)

	batch := make([]model.Entity, 0, d.cfg.batchSize)

	flush := func() bool {
		if len(batch) == 0 {
			return true
		}

		out := make([]model.Entity, len(batch))
		copy(out, batch)
		batch = batch[:0]

		select {
		case <-ctx.Done():
			return false
		case <-d.done:
			return false
		case d.decoded <- rill.Try[[]model.Entity]{Value: out}:
			return true
		}
	}

	fail := func(err error) {
		slog.Error("osm decode failed", "error", err)

		select {
		case <-ctx.Done():
		case <-d.done:
		case d.decoded <- rill.Try[[]model.Entity]{Error: err}:
		}
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-d.done:
			return
		default:
		}

		tok := d.pending
		d.pending = nil

		if tok == nil {
			var err error

			tok, err = d.xml.Token()
			if err != nil {
				if err == io.EOF {
					flush()
				} else {
					fail(fmt.Errorf("read osm stream: %w", err))
				}

				return
			}
		}

		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		var (
			entity model.Entity
			err    error
		)

		switch se.Name.Local {
		case "node":
			entity, err = d.parseNode(se)
		case "way":
			entity, err = d.parseWay(se)
		case "relation":
			entity, err = d.parseRelation(se)
		default:
			if err = d.xml.Skip(); err != nil {
				fail(fmt.Errorf("read osm stream: %w", err))

				return
			}

			continue
		}

		if err != nil {
			fail(err)

			return
		}

		batch = append(batch, entity)

		if len(batch) == d.cfg.batchSize {
			if !flush() {
				return
			}
		}
	}
}
