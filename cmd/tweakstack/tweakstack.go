package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/launchdarkly/go-sdk-common/v3/ldlog"

	"github.com/uitweaks/tweakstack"
	"github.com/uitweaks/tweakstack/config"
	"github.com/uitweaks/tweakstack/internal/application"
	"github.com/uitweaks/tweakstack/internal/version"
	"github.com/uitweaks/tweakstack/logging"
	"github.com/uitweaks/tweakstack/tweaks"
)

const usageText = `usage: tweakstack [options] <command> [args]

commands:
  enabled FEATURE            print "true" if the feature flag is enabled
  get FEATURE VARIABLE       print the tweak value stored for the variable
  set FEATURE VARIABLE VALUE write a tweak value to the persisted store
  delete FEATURE VARIABLE    remove a tweak value from the persisted store

VALUE is parsed as a boolean if it is exactly "true" or "false", as a number
if it parses as one, and as a string otherwise.

options:
  --config FILE          configuration file location
  --allow-missing-file   suppress error if config file is not found
  --from-env             read configuration from environment variables
`

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "tweakstack: "+err.Error())
		os.Exit(1)
	}
}

func run(osArgs []string) error {
	opts, err := application.ReadOptions(osArgs)
	if err != nil {
		return err
	}
	if len(opts.Args) == 0 {
		fmt.Fprint(os.Stderr, usageText)
		return fmt.Errorf("no command given")
	}

	var c config.Config
	loggers := logging.MakeDefaultLoggers()
	if opts.ConfigFile != "" {
		if err := config.LoadConfigFile(&c, opts.ConfigFile, loggers); err != nil {
			return err
		}
	}
	if opts.UseEnvironment {
		if err := config.LoadConfigFromEnvironment(&c, loggers); err != nil {
			return err
		}
	}
	loggers = logging.MakeLoggersForLevel(c.Main.LogLevel.GetOrElse(ldlog.Info))
	loggers.Debugf("tweakstack %s, %s", version.Version, opts.DescribeConfigSource())

	command, args := opts.Args[0], opts.Args[1:]
	switch command {
	case "enabled":
		return runEnabled(c, loggers, args)
	case "get":
		return runGet(c, loggers, args)
	case "set":
		return runSet(c, loggers, args)
	case "delete":
		return runDelete(c, loggers, args)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func runEnabled(c config.Config, loggers ldlog.Loggers, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: enabled FEATURE")
	}
	stack, err := tweakstack.NewStackFromConfig(c, nil, loggers)
	if err != nil {
		return err
	}
	defer stack.Close()
	fmt.Println(strconv.FormatBool(stack.IsFeatureEnabled(args[0])))
	return nil
}

func runGet(c config.Config, loggers ldlog.Loggers, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: get FEATURE VARIABLE")
	}
	stack, err := tweakstack.NewStackFromConfig(c, nil, loggers)
	if err != nil {
		return err
	}
	defer stack.Close()
	tweak, ok := stack.TweakWith(args[0], args[1])
	if !ok {
		return fmt.Errorf("no value is set for variable %q", args[1])
	}
	fmt.Println(tweak.Value)
	return nil
}

func runSet(c config.Config, loggers ldlog.Loggers, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: set FEATURE VARIABLE VALUE")
	}
	store, err := persistedStore(c, loggers)
	if err != nil {
		return err
	}
	return store.Set(parseValue(args[2]), args[0], args[1])
}

func runDelete(c config.Config, loggers ldlog.Loggers, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: delete FEATURE VARIABLE")
	}
	store, err := persistedStore(c, loggers)
	if err != nil {
		return err
	}
	return store.DeleteValue(args[0], args[1])
}

func persistedStore(c config.Config, loggers ldlog.Loggers) (tweaks.MutableProvider, error) {
	if err := config.ValidateConfig(&c, loggers); err != nil {
		return nil, err
	}
	store, err := tweakstack.NewPersistedProvider(c, loggers)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, fmt.Errorf("no persisted store is configured; writes need [Redis], [Consul], or [DynamoDB] settings")
	}
	return store, nil
}

// parseValue maps a command-line argument to a typed tweak value: exactly
// "true"/"false" is a boolean, anything that parses as a float is a number,
// and everything else is a string.
func parseValue(arg string) tweaks.Value {
	switch arg {
	case "true":
		return tweaks.Bool(true)
	case "false":
		return tweaks.Bool(false)
	}
	if n, err := strconv.ParseFloat(arg, 64); err == nil {
		return tweaks.Float64(n)
	}
	return tweaks.String(arg)
}
