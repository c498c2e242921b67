// Package repository implements the domain repositories: in-memory ordered
// record sequences hydrated from the persistent store, with every successful
// mutation followed by a full re-serialization of the domain's sequence.
package repository

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/bwmarrin/snowflake"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

// ErrNotFound signals that an update targeted an id that is not present in
// the sequence. Remove deliberately does not return it.
var ErrNotFound = errors.New("record not found")

// ValidationError reports a rejected draft or patch. Nothing is committed
// when one is returned.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// Change event actions, published on TopicChange after each mutation.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
	ActionReset   = "reset"
)

// TopicChange is the event bus topic carrying ChangeEvent payloads.
const TopicChange = "crm:change"

// ChangeEvent describes one committed repository mutation.
type ChangeEvent struct {
	Domain   string
	Action   string
	EntityID string
	At       time.Time
}

var idNode *snowflake.Node

func init() {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	idNode = node
}

// nextID returns a fresh time-derived id token.
func nextID() string {
	return idNode.Generate().String()
}

func stringToTimeHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() == reflect.String && to == reflect.TypeOf(time.Time{}) {
		return dateparse.ParseAny(data.(string))
	}
	return data, nil
}

// applyPatch merges the supplied fields into target, leaving absent fields
// untouched. Keys follow the entity's json tags; timestamp strings are
// reconstructed into time values.
func applyPatch(target interface{}, patch map[string]interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "json",
		WeaklyTypedInput: true,
		DecodeHook:       stringToTimeHook,
	})
	if err != nil {
		return errors.Wrap(err, "build patch decoder")
	}
	if err := dec.Decode(patch); err != nil {
		return validationf("invalid patch: %v", err)
	}
	return nil
}

func containsFold(haystack, term string) bool {
	return strings.Contains(strings.ToLower(haystack), term)
}

func oneOf(value string, allowed []string) bool {
	for _, v := range allowed {
		if v == value {
			return true
		}
	}
	return false
}
