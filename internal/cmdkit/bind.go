package cmdkit

import (
	"encoding"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/mologie/nicecase"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	// optPersistent adds the flag to the persistent flag set instead of the command flag set.
	optPersistent = "persistent"
)

const (
	// annotationEnv stores the environment variable's name to which the flag is bound. On a
	// command, it stores the env prefix including the trailing underscore.
	annotationEnv = "cmdkit_env"

	// annotationUsage stores the usage string without the env suffix.
	annotationUsage = "cmdkit_usage"
)

type config struct {
	EnvPrefix string
}

type Option func(*config)

// WithEnvPrefix sets a prefix to prepend to env vars, separated by an underscore. For sub-structs,
// the prefix is further extended with the screaming snake case of the field name.
func WithEnvPrefix(prefix string) Option {
	if prefix == "" {
		panic("env prefix must not be empty")
	}
	if strings.ToUpper(prefix) != prefix {
		panic("env prefix must be all uppercase")
	}
	if strings.HasSuffix(prefix, "_") {
		panic("env prefix must not end with an underscore, it is added automatically")
	}
	return func(cfg *config) {
		cfg.EnvPrefix = prefix + "_"
	}
}

// BindConfig maps fields of cfg to flag sets of cmd. A field's value is set with the following
// precedence: Explicit flag, environment variable, then whatever is already set in cfg.
//
// Struct tags:
//   - flag: "persistent" to register the flag with the persistent flag set.
//   - param: "foo,f" for --foo=bar or -f x. Defaults to kebab-case of field name, long opt only.
//   - env: Environment variable name, "-" for none, defaults to prefixed screaming snake case.
//   - usage: Flag usage string. Environment variable name is appended if set.
func BindConfig(cmd *cobra.Command, cfg any, opts ...Option) {
	var bindCfg config
	for _, opt := range opts {
		opt(&bindCfg)
	}
	if bindCfg.EnvPrefix != "" {
		if cmd.Annotations == nil {
			cmd.Annotations = map[string]string{}
		}
		cmd.Annotations[annotationEnv] = bindCfg.EnvPrefix
	}
	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		panic("cfg must be a struct pointer")
	}
	bindStruct(v.Elem(), cmd, "", bindCfg.EnvPrefix, false)
}

func bindStruct(struct_ reflect.Value, cmd *cobra.Command, paramPrefix, envPrefix string, persistent bool) {
	type_ := struct_.Type()
	for i := 0; i < type_.NumField(); i++ {
		field := type_.Field(i)
		if !field.IsExported() {
			continue
		}
		tags := getFieldTags(paramPrefix, envPrefix, field)
		fieldPersistent := persistent || tags.hasOption(optPersistent)
		value := struct_.Field(i)

		fs := cmd.Flags()
		if fieldPersistent {
			fs = cmd.PersistentFlags()
		}

		in := value.Addr().Interface()
		switch p := in.(type) {
		case *bool:
			fs.BoolVarP(p, tags.name, tags.abbrev, *p, tags.usage)
		case *int:
			fs.IntVarP(p, tags.name, tags.abbrev, *p, tags.usage)
		case *uint:
			fs.UintVarP(p, tags.name, tags.abbrev, *p, tags.usage)
		case *float64:
			fs.Float64VarP(p, tags.name, tags.abbrev, *p, tags.usage)
		case *string:
			fs.StringVarP(p, tags.name, tags.abbrev, *p, tags.usage)
		case *[]string:
			fs.StringSliceVarP(p, tags.name, tags.abbrev, *p, tags.usage)
		case *time.Duration:
			fs.DurationVarP(p, tags.name, tags.abbrev, *p, tags.usage)
		default:
			if flagValue, ok := in.(pflag.Value); ok {
				fs.VarP(flagValue, tags.name, tags.abbrev, tags.usage)
			} else if decoder, encoder, ok := getTextDecoderEncoder(in); ok {
				fs.TextVarP(decoder, tags.name, tags.abbrev, encoder, tags.usage)
			} else if value.Kind() == reflect.Struct && value.Type().NumField() > 0 {
				var nextEnv string
				if tags.HasEnv() {
					nextEnv = tags.env + "_"
				}
				bindStruct(value, cmd, tags.name+"-", nextEnv, fieldPersistent)
				continue
			} else {
				panic(fmt.Sprintf("unsupported field type %T", p))
			}
		}

		flag := fs.Lookup(tags.name)
		if flag == nil {
			panic(fmt.Sprintf("flag %q not found after it was added", tags.name))
		}
		if tags.HasEnv() {
			if err := fs.SetAnnotation(flag.Name, annotationEnv, []string{tags.env}); err != nil {
				panic(fmt.Sprintf("failed to set env annotation for %q: %s", tags.name, err))
			}
			if flag.Usage != "" {
				_ = fs.SetAnnotation(flag.Name, annotationUsage, []string{flag.Usage})
			}
			spaceAppendf(&flag.Usage, "(env %s)", tags.env)
		}
	}
}

type fieldTags struct {
	opts   []string
	name   string
	abbrev string
	env    string
	usage  string
}

func getFieldTags(paramPrefix, envPrefix string, field reflect.StructField) (tags fieldTags) {
	tags.opts = strings.Split(field.Tag.Get("flag"), ",")
	tags.name, tags.abbrev, _ = strings.Cut(field.Tag.Get("param"), ",")
	tags.env = field.Tag.Get("env")
	tags.usage = field.Tag.Get("usage")

	if len(tags.name) == 1 {
		if tags.abbrev != "" {
			panic(fmt.Sprintf("param %q must be at least two characters", tags.name))
		}
		tags.abbrev = tags.name
		tags.name = ""
	}
	if tags.name == "" {
		tags.name = paramPrefix + nicecase.ToKebabCase(field.Name)
	} else {
		tags.name = paramPrefix + tags.name
	}

	if len(tags.abbrev) > 1 {
		panic(fmt.Sprintf("abbreviation %q for %q must be a single character", tags.abbrev, tags.name))
	}

	if tags.env == "" {
		if envPrefix == "" {
			tags.env = "-"
		} else {
			tags.env = envPrefix + nicecase.ToScreamingSnakeCase(field.Name)
		}
	} else if upper := nicecase.ToScreamingSnakeCase(tags.env); tags.env != "-" && tags.env != upper {
		panic(fmt.Sprintf("env tag %q for %q must be in SCREAMING_SNAKE_CASE (%q)", tags.env, tags.name, upper))
	}

	return
}

func (ft fieldTags) hasOption(name string) bool {
	return slices.Contains(ft.opts, name)
}

func (ft fieldTags) HasEnv() bool {
	return ft.env != "-"
}

func getTextDecoderEncoder(in any) (encoding.TextUnmarshaler, encoding.TextMarshaler, bool) {
	if decoder, ok := in.(encoding.TextUnmarshaler); ok {
		if encoder, ok := in.(encoding.TextMarshaler); ok {
			return decoder, encoder, true
		}
	}
	return nil, nil, false
}

func spaceAppend(s *string, suffix string) {
	if len(*s) > 0 {
		*s += " "
	}
	*s += suffix
}

func spaceAppendf(s *string, format string, a ...any) {
	spaceAppend(s, fmt.Sprintf(format, a...))
}
