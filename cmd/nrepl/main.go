package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/nebula/engine"
	"github.com/npillmayer/nebula/runtime"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// main() starts an interactive CLI ("N.REPL"), where users may enter
// lambda terms. N.REPL will derive or evaluate the term and print out the
// result. Terms given as command line arguments are evaluated before
// interactive mode starts.
func main() {
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	modeName := flag.String("mode", "derive", "Mode [derive|evaluate]")
	initf := flag.String("init", "", "Initial load")
	resolve := flag.Bool("resolve", false, "Print values with variables resolved")
	dump := flag.Bool("dump", false, "Dump the register after each evaluation (with -trace Debug)")
	flag.Parse()
	//
	// set up configuration and logging
	conf := configuration(*dump)
	gconf.Initialize(conf)
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to N.REPL")   // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	mode, err := engine.ParseMode(*modeName)
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(2)
	}
	setTraceLevel(traceLevel(*tlevel)) // now set the user supplied level
	//
	// set up REPL
	repl, err := readline.New("π> ")
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	defer repl.Close()
	intp := &Intp{
		repl:    repl,
		conf:    conf,
		mode:    mode,
		resolve: *resolve,
	}
	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if input != "" {
		tracer().Infof("Input argument is \"%s\"", input)
		if _, err := intp.Eval(input); err != nil {
			os.Exit(2)
		}
	}
	//
	// load an init file and start receiving commands / terms
	tracer().Infof("Quit with <ctrl>D or :quit") // inform user how to stop the CLI
	intp.loadInitFile(*initf)                    // init file name provided by flag
	intp.REPL()                                  // go into interactive mode
}

// configuration creates the global application configuration. Tracing
// goes to the Go logger; switches are set from command line flags.
func configuration(dump bool) testconfig.Conf {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	return testconfig.Conf{
		"tracing.adapter": "go",
		"dump-register":   dump,
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl      *readline.Instance
	conf      testconfig.Conf // global configuration, see gconf
	mode      engine.Mode
	resolve   bool
	lastValue engine.Value
	lastReg   *runtime.Register[engine.Value]
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		if _, err := intp.Eval(line); err != nil {
			tracer().Errorf("Error line %d: %v", lineno, err)
		}
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: %v", err)
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			continue // error has already been printed
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval executes a REPL command or interprets a term, given on a line by
// itself. It returns true if the user asked to quit.
func (intp *Intp) Eval(line string) (bool, error) {
	if strings.HasPrefix(line, ":") {
		return intp.Execute(strings.Fields(line[1:]))
	}
	tracer().Debugf("----------------------- %s ------------------------------", intp.mode)
	v, reg, err := engine.Interpret(line, intp.mode)
	if err != nil {
		pterm.Error.Println(err.Error())
		return false, err
	}
	intp.lastValue, intp.lastReg = v, reg
	if gconf.GetBool("dump-register") {
		reg.Dump()
	}
	pterm.Info.Println(v.String())
	if intp.resolve {
		pterm.Info.Println("≡ " + engine.Resolve(reg, v).String())
	}
	return false, nil
}

// Execute runs a REPL command, given without its leading colon.
func (intp *Intp) Execute(args []string) (bool, error) {
	if len(args) == 0 {
		return false, intp.fail(fmt.Errorf("missing command"))
	}
	switch args[0] {
	case "quit", "q":
		return true, nil
	case "reg":
		if intp.lastReg == nil {
			pterm.Info.Println("no register yet")
			return false, nil
		}
		intp.lastReg.Each(func(e runtime.Entry[engine.Value]) {
			pterm.Info.Printf("%-8s = %v\n", e.Key(), e.Value)
		})
	case "tree":
		if intp.lastValue == nil {
			pterm.Info.Println("no value yet")
			return false, nil
		}
		root := pterm.NewTreeFromLeveledList(leveledValue(intp.lastValue, pterm.LeveledList{}, 0))
		pterm.DefaultTree.WithRoot(root).Render()
	case "mode":
		if len(args) > 1 {
			m, err := engine.ParseMode(args[1])
			if err != nil {
				return false, intp.fail(err)
			}
			intp.mode = m
		}
		pterm.Info.Println("mode is " + intp.mode.String())
	case "resolve":
		intp.resolve = !intp.resolve
		pterm.Info.Printf("resolve is %v\n", intp.resolve)
	case "dump":
		if intp.conf == nil {
			return false, intp.fail(fmt.Errorf("no configuration to change"))
		}
		intp.conf["dump-register"] = !gconf.GetBool("dump-register")
		pterm.Info.Printf("dump-register is %v\n", gconf.GetBool("dump-register"))
	default:
		return false, intp.fail(fmt.Errorf("unknown command ':%s'", args[0]))
	}
	return false, nil
}

func (intp *Intp) fail(err error) error {
	pterm.Error.Println(err.Error())
	return err
}

// leveledValue flattens a value into a leveled list, suitable for pterm
// tree rendering.
func leveledValue(v engine.Value, ll pterm.LeveledList, level int) pterm.LeveledList {
	switch x := v.(type) {
	case *engine.Fun:
		ll = append(ll, pterm.LeveledListItem{
			Level: level,
			Text:  fmt.Sprintf("\\%s %v", x.Name, x.Scope),
		})
		ll = leveledValue(x.Body, ll, level+1)
	case *engine.App:
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: "@"})
		ll = leveledValue(x.Lhs, ll, level+1)
		ll = leveledValue(x.Rhs, ll, level+1)
	default:
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: x.String()})
	}
	return ll
}

// setTraceLevel sets the level for all of nebula's tracers.
func setTraceLevel(level tracing.TraceLevel) {
	for _, key := range []string{"nebula.syntax", "nebula.runtime", "nebula.engine", "nebula.repl"} {
		tracing.Select(key).SetTraceLevel(level)
	}
	gtrace.SyntaxTracer.SetTraceLevel(level)
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
