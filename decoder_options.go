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

package osmx

const (
	// DefaultReadBufferSize is the default buffer size for reading the
	// underlying XML stream.
	DefaultReadBufferSize = 1024 * 1024

	// DefaultBatchSize is the default number of entities delivered per
	// Decode call.
	DefaultBatchSize = 1024

	// DefaultChannelLength is the default number of decoded batches held
	// ahead of the consumer.
	DefaultChannelLength = 8
)

// decoderOptions provides optional configuration parameters for Decoder construction.
type decoderOptions struct {
	readBufferSize int // buffer size for reading the XML stream
	batchSize      int // entities per decoded batch
	channelLength  int // decoded batches buffered ahead of the consumer
}

// DecoderOption configures how we set up the decoder.
type DecoderOption func(*decoderOptions)

// WithReadBufferSize lets you set the buffer size for reading the XML stream.
func WithReadBufferSize(s int) DecoderOption {
	return func(o *decoderOptions) {
		o.readBufferSize = s
	}
}

// WithBatchSize lets you set the number of entities delivered per Decode call.
func WithBatchSize(s int) DecoderOption {
	return func(o *decoderOptions) {
		o.batchSize = s
	}
}

// WithChannelLength lets you set the number of decoded batches buffered ahead
// of the consumer.
func WithChannelLength(n int) DecoderOption {
	return func(o *decoderOptions) {
		o.channelLength = n
	}
}

// defaultDecoderConfig provides a default configuration for decoders.
var defaultDecoderConfig = decoderOptions{
	readBufferSize: DefaultReadBufferSize,
	batchSize:      DefaultBatchSize,
	channelLength:  DefaultChannelLength,
}
