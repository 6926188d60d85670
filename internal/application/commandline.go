// Package application contains the command-line option handling for the
// tweakstack tool.
package application

import (
	"flag"
	"fmt"
	"os"
)

// Options represents all options that can be set from the command line,
// plus the remaining non-flag arguments (the command and its parameters).
type Options struct {
	ConfigFile       string
	AllowMissingFile bool
	UseEnvironment   bool
	Args             []string
}

func errConfigFileNotFound(filename string) error {
	return fmt.Errorf("configuration file %q does not exist", filename)
}

// DescribeConfigSource returns a human-readable phrase describing whether the
// configuration comes from a file, from variables, or both.
func (o Options) DescribeConfigSource() string {
	if o.ConfigFile == "" && o.UseEnvironment {
		return "configuration from environment variables"
	}
	desc := ""
	if o.ConfigFile != "" {
		desc = fmt.Sprintf("configuration file %s", o.ConfigFile)
	}
	if o.UseEnvironment {
		desc += " plus environment variables"
	}
	if desc == "" {
		desc = "default configuration"
	}
	return desc
}

// ReadOptions reads and validates the command-line options from the given
// argument list (normally os.Args).
//
// The configuration parameter behavior is as follows:
//  1. If you specify --config $FILEPATH, it loads that file. Failure to find
//     it or parse it is a fatal error, unless you also specify
//     --allow-missing-file.
//  2. If you specify --from-env, it applies configuration from environment
//     variables.
//  3. If you specify both, the file is loaded first, then it applies changes
//     from variables if any.
//  4. Omitting both options yields the zero configuration, which describes a
//     stack containing only the in-memory provider.
func ReadOptions(osArgs []string) (Options, error) {
	var o Options

	fs := flag.NewFlagSet("tweakstack", flag.ContinueOnError)
	fs.StringVar(&o.ConfigFile, "config", "", "configuration file location")
	fs.BoolVar(&o.AllowMissingFile, "allow-missing-file", false, "suppress error if config file is not found")
	fs.BoolVar(&o.UseEnvironment, "from-env", false, "read configuration from environment variables")
	err := fs.Parse(osArgs[1:])
	if err != nil {
		return o, err
	}
	o.Args = fs.Args()

	if o.ConfigFile != "" {
		_, err := os.Stat(o.ConfigFile)
		fileExists := err == nil || !os.IsNotExist(err)
		if !fileExists {
			if !o.AllowMissingFile {
				return o, errConfigFileNotFound(o.ConfigFile)
			}
			o.ConfigFile = ""
		}
	}

	return o, nil
}
