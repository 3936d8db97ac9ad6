package feeders

import (
	"fmt"
	"os"
	"reflect"

	"github.com/golobby/cast"
)

// EnvFeeder populates a struct's fields from environment variables
// named by each field's `env:"..."` tag, converting the string value
// to the field's static type via golobby/cast.
type EnvFeeder struct{}

// NewEnvFeeder creates an EnvFeeder.
func NewEnvFeeder() EnvFeeder { return EnvFeeder{} }

func (EnvFeeder) Feed(structure interface{}) error {
	rv := reflect.ValueOf(structure)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("env feed: structure must be a pointer to a struct")
	}
	elem := rv.Elem()
	t := elem.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		envKey := field.Tag.Get("env")
		if envKey == "" {
			continue
		}
		strValue, ok := os.LookupEnv(envKey)
		if !ok {
			continue
		}
		converted, err := cast.FromType(strValue, field.Type)
		if err != nil {
			return fmt.Errorf("env feed: field %s (env %s): %w", field.Name, envKey, err)
		}
		elem.Field(i).Set(reflect.ValueOf(converted))
	}
	return nil
}
