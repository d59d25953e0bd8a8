package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/callebjorkell/tm1729/internal/bus"
	"github.com/callebjorkell/tm1729/internal/clockface"
	"github.com/callebjorkell/tm1729/internal/tm1729"
	"github.com/jonboulle/clockwork"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	app        = kingpin.New("tm1729", "TM1729 segment display driver")
	debug      = app.Flag("debug", "Turn on debug logging.").Bool()
	configFile = app.Flag("config", "Configuration file.").Short('c').Default(defaultConfigFile).String()

	initCmd    = app.Command("init", "Initialize the controller and show the startup pattern.")
	clearCmd   = app.Command("clear", "Blank every segment.")
	fillCmd    = app.Command("fill", "Light every segment as a lamp test.")
	defaultCmd = app.Command("default", "Show the startup pattern.")
	setCmd     = app.Command("set", "Set one field. Put negative values after --, e.g. set temp1 -- -4.")
	setField   = setCmd.Arg("field", "Field to set.").Required().Enum(fieldNames()...)
	setValue   = setCmd.Arg("value", "Value to show.").Required().Int()
	applyCmd   = app.Command("apply", "Initialize the controller and show every field from the configuration.")
	clockCmd   = app.Command("clock", "Initialize the controller and keep hour and minute on the current time.")
	fieldsCmd  = app.Command("fields", "List the supported fields and their ranges.")
	version    = app.Command("version", "Show current version.")
)

type colorFormatter struct {
	log.TextFormatter
}

func (f *colorFormatter) Format(entry *log.Entry) ([]byte, error) {
	var levelColor int
	switch entry.Level {
	case log.DebugLevel, log.TraceLevel:
		levelColor = 90 // dark grey
	case log.WarnLevel:
		levelColor = 33 // yellow
	case log.ErrorLevel, log.FatalLevel, log.PanicLevel:
		levelColor = 91 // bright red
	default:
		levelColor = 39 // default
	}
	return []byte(fmt.Sprintf("\x1b[%dm%s\x1b[0m\n", levelColor, entry.Message)), nil
}

func main() {
	cmd, err := app.Parse(os.Args[1:])
	if err != nil {
		fmt.Printf("%v: Try --help\n", err.Error())
		os.Exit(1)
	}

	log.SetFormatter(&colorFormatter{})
	if *debug {
		log.Info("Enabling debug output...")
		log.SetLevel(log.DebugLevel)
	}

	switch cmd {
	case version.FullCommand():
		showVersion()
		return
	case fieldsCmd.FullCommand():
		listFields()
		return
	}

	conf, err := readConfig(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	setupLogFile(conf)

	display, err := openDisplay(conf)
	if err != nil {
		log.Fatal(err)
	}

	switch cmd {
	case initCmd.FullCommand():
		display.Init()
		display.LoadDefault()
	case clearCmd.FullCommand():
		display.Clear()
	case fillCmd.FullCommand():
		display.Fill()
	case defaultCmd.FullCommand():
		display.LoadDefault()
	case setCmd.FullCommand():
		f, err := tm1729.ParseField(*setField)
		if err != nil {
			log.Fatal(err)
		}
		if err := display.Set(f, *setValue); err != nil {
			log.Fatal(err)
		}
	case applyCmd.FullCommand():
		display.Init()
		if err := applyFields(display, conf); err != nil {
			log.Fatal(err)
		}
	case clockCmd.FullCommand():
		display.Init()
		if err := applyFields(display, conf); err != nil {
			log.Fatal(err)
		}
		runClock(display)
	default:
		kingpin.FatalUsage("Unrecognized command")
	}
}

func openDisplay(conf *Config) (*tm1729.Dev, error) {
	lines, err := bus.OpenLines(conf.Pins.Clock, conf.Pins.Data)
	if err != nil {
		return nil, err
	}
	return tm1729.New(bus.New(lines, bus.NewClockDelay()), nil), nil
}

func setupLogFile(conf *Config) {
	if conf.Log.File == "" {
		return
	}
	log.Infof("Logging to %s", conf.Log.File)
	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	log.SetOutput(&lumberjack.Logger{
		Filename:   conf.Log.File,
		MaxSize:    conf.Log.MaxSizeMB,
		MaxBackups: conf.Log.MaxBackups,
	})
}

func applyFields(display clockface.Setter, conf *Config) error {
	for _, fv := range conf.FieldValues() {
		log.Infof("Showing %v: %d", fv.Field, fv.Value)
		if err := display.Set(fv.Field, fv.Value); err != nil {
			return err
		}
	}
	return nil
}

func runClock(display *tm1729.Dev) {
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-signalChan
		cancel()
	}()

	clockface.New(display, clockwork.NewRealClock()).Run(ctx)
	display.Clear()
	log.Info("Done...")
}

func fieldNames() []string {
	var names []string
	for _, f := range tm1729.Fields() {
		names = append(names, f.String())
	}
	return names
}

func listFields() {
	for _, f := range tm1729.Fields() {
		min, max, _ := tm1729.Range(f)
		fmt.Printf("%-9s %d..%d\n", f, min, max)
	}
}
