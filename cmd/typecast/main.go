// typecast converts command-line values between types and text encodings.
//
// Usage:
//
//	typecast [--config options.yaml] [--from KIND] --to KIND [--verbose] VALUE...
//
// KIND is one of string, bool, int, uint, float, time, millis, bits, duration,
// base64, hex or ansi. Each VALUE is interpreted as --from, converted to --to
// and printed on its own line.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/viant/typecast/conv"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// kind is a conversion endpoint selectable from the command line
type kind struct {
	rType reflect.Type
	tag   conv.Tag
}

var (
	bytesType   = reflect.TypeOf([]byte{})
	indexesType = reflect.TypeOf([]uint{})
)

var kinds = map[string]kind{
	"string":   {rType: reflect.TypeOf("")},
	"bool":     {rType: reflect.TypeOf(false)},
	"int":      {rType: reflect.TypeOf(int64(0))},
	"uint":     {rType: reflect.TypeOf(uint64(0))},
	"float":    {rType: reflect.TypeOf(float64(0))},
	"time":     {rType: reflect.TypeOf(time.Time{})},
	"millis":   {rType: reflect.TypeOf(int64(0))},
	"bits":     {rType: indexesType},
	"duration": {rType: reflect.TypeOf(time.Duration(0))},
	"base64":   {rType: bytesType, tag: conv.Base64},
	"hex":      {rType: bytesType, tag: conv.Hex},
	"ansi":     {rType: reflect.TypeOf(""), tag: conv.Ansi},
}

func kindNames() string {
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func lookupKind(name string) (kind, error) {
	ret, ok := kinds[strings.ToLower(name)]
	if !ok {
		return kind{}, fmt.Errorf("unknown kind %q, expected one of: %s", name, kindNames())
	}
	return ret, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	var configPath, fromName, toName string
	var verbose bool

	flagSet := pflag.NewFlagSet("typecast", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&configPath, "config", "", "YAML file with converter options")
	flagSet.StringVar(&fromName, "from", "string", "kind of the input values")
	flagSet.StringVar(&toName, "to", "", "kind of the output values (required)")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "log every conversion")
	flagSet.Usage = func() {
		fmt.Fprintf(stderr, "Usage: typecast [--config options.yaml] [--from KIND] --to KIND [--verbose] VALUE...\n\nKinds: %s\n\n", kindNames())
		flagSet.PrintDefaults()
	}
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if toName == "" {
		return errors.New("--to is required")
	}
	from, err := lookupKind(fromName)
	if err != nil {
		return err
	}
	to, err := lookupKind(toName)
	if err != nil {
		return err
	}
	options, err := loadOptions(configPath)
	if err != nil {
		return err
	}
	converter, err := conv.NewConverter(options)
	if err != nil {
		return err
	}
	active := converter.Options()
	codepage, err := active.LegacyCodepage()
	if err != nil {
		return err
	}
	logger.Debug("converter ready", "codepage", codepage.Name(), "binaryText", active.BinaryText, "timeLayout", active.TimeLayout)

	for _, arg := range flagSet.Args() {
		value, err := parse(converter, from, arg)
		if err != nil {
			return fmt.Errorf("value %q: %w", arg, err)
		}
		text, err := render(converter, to, value)
		if err != nil {
			return fmt.Errorf("value %q: %w", arg, err)
		}
		logger.Debug("converted", "input", arg, "from", fromName, "to", toName, "output", text)
		fmt.Fprintln(stdout, text)
	}
	return nil
}

func loadOptions(path string) (conv.Options, error) {
	options := conv.DefaultOptions()
	if path == "" {
		return options, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return options, fmt.Errorf("failed to read config: %w", err)
	}
	if err = yaml.Unmarshal(data, &options); err != nil {
		return options, fmt.Errorf("failed to parse config %v: %w", path, err)
	}
	return options, nil
}

// parse interprets command-line text as a value of the from kind
func parse(converter *conv.Converter, from kind, text string) (interface{}, error) {
	dest := reflect.New(from.rType)
	var err error
	switch {
	case from.tag != conv.None:
		err = converter.ConvertFrom(from.tag, text, dest.Interface())
	case from.rType == indexesType:
		var items []string
		if text = strings.TrimSpace(text); text != "" {
			items = strings.Split(text, ",")
			for i := range items {
				items[i] = strings.TrimSpace(items[i])
			}
		}
		err = converter.Convert(items, dest.Interface())
		if err == nil && dest.Elem().IsNil() {
			dest.Elem().Set(reflect.MakeSlice(indexesType, 0, 0))
		}
	default:
		err = converter.Convert(text, dest.Interface())
	}
	if err != nil {
		return nil, err
	}
	return dest.Elem().Interface(), nil
}

// render converts value to the to kind and formats it as text
func render(converter *conv.Converter, to kind, value interface{}) (string, error) {
	if to.tag != conv.None {
		return converter.Encode(to.tag, value)
	}
	dest := reflect.New(to.rType)
	if err := converter.Convert(value, dest.Interface()); err != nil {
		return "", err
	}
	if to.rType == indexesType {
		items, err := conv.To[[]string](converter, dest.Elem().Interface())
		if err != nil {
			return "", err
		}
		return strings.Join(items, ","), nil
	}
	return conv.To[string](converter, dest.Elem().Interface())
}
