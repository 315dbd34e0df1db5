package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldMethod is the structured log field key for the extraction method that succeeded.
	FieldMethod = "method_used"
	// FieldAPIVersion is the structured log field key for the document service API version.
	FieldAPIVersion = "api_version"
	// FieldStrategy is the structured log field key for the decode strategy that produced a record.
	FieldStrategy = "decode_strategy"
	// FieldProvider is the structured log field key for the inference provider name.
	FieldProvider = "ai_provider"
	// FieldModel is the structured log field key for the inference model or deployment.
	FieldModel = "ai_model"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields safely attaches the provided fields to the logger.
// If the logger is nil or no fields are supplied, the input logger is returned
// unchanged, defaulting to a no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// ProviderFields returns standard zap fields describing the inference provider
// and model. Empty values are ignored to keep log entries compact.
func ProviderFields(provider, model string) []zap.Field {
	return StringFields(
		StringField{Key: FieldProvider, Value: provider},
		StringField{Key: FieldModel, Value: model},
	)
}

// WithProviderFields attaches the provider fields to the provided logger.
func WithProviderFields(logger *zap.Logger, provider, model string) *zap.Logger {
	return WithFields(logger, ProviderFields(provider, model)...)
}
