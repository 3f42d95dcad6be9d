package main

import (
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/pterm/pterm"

	"github.com/npillmayer/nebula/engine"
)

func TestEvalKeepsLastResult(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nebula.repl")
	defer teardown()
	//
	intp := &Intp{mode: engine.ModeDerive}
	quit, err := intp.Eval(`((\x. x) 5)`)
	qt.Assert(t, qt.IsNil(err))
	qt.Check(t, qt.IsFalse(quit))
	qt.Check(t, qt.Equals(intp.lastValue.String(), `\x. x`))
	qt.Check(t, qt.Equals(intp.lastReg.Size(), 1))
	//
	_, err = intp.Eval(`(\x. x`)
	qt.Check(t, qt.IsNotNil(err))
	qt.Check(t, qt.Equals(intp.lastValue.String(), `\x. x`))
}

func TestCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nebula.repl")
	defer teardown()
	//
	intp := &Intp{mode: engine.ModeDerive}
	_, err := intp.Eval(":mode evaluate")
	qt.Assert(t, qt.IsNil(err))
	qt.Check(t, qt.Equals(intp.mode, engine.ModeEvaluate))
	_, err = intp.Eval(`\x. x`)
	qt.Check(t, qt.IsNil(err))
	_, err = intp.Eval(":resolve")
	qt.Check(t, qt.IsNil(err))
	qt.Check(t, qt.IsTrue(intp.resolve))
	for _, cmd := range []string{":reg", ":tree", ":mode"} {
		_, err = intp.Eval(cmd)
		qt.Check(t, qt.IsNil(err), qt.Commentf("command %s", cmd))
	}
	_, err = intp.Eval(":frobnicate")
	qt.Check(t, qt.IsNotNil(err))
	quit, err := intp.Eval(":quit")
	qt.Check(t, qt.IsNil(err))
	qt.Check(t, qt.IsTrue(quit))
}

func TestLeveledValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nebula.repl")
	defer teardown()
	//
	v, _, err := engine.Interpret(`((f 1) \x. x)`, engine.ModeEvaluate)
	qt.Assert(t, qt.IsNil(err))
	ll := leveledValue(v, pterm.LeveledList{}, 0)
	var texts []string
	var levels []int
	for _, item := range ll {
		texts = append(texts, item.Text)
		levels = append(levels, item.Level)
	}
	qt.Check(t, qt.DeepEquals(texts, []string{"@", "@", "f", "1", `\x [0 1]`, "x"}))
	qt.Check(t, qt.DeepEquals(levels, []int{0, 1, 2, 2, 1, 2}))
}

func TestDumpRegisterSwitch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nebula.repl")
	defer teardown()
	//
	qt.Check(t, qt.IsTrue(configuration(true).GetBool("dump-register")))
	conf := configuration(false)
	gconf.Initialize(conf)
	defer gconf.Initialize(configuration(false))
	qt.Assert(t, qt.IsFalse(gconf.GetBool("dump-register")))
	//
	intp := &Intp{conf: conf, mode: engine.ModeEvaluate}
	_, err := intp.Eval(":dump")
	qt.Assert(t, qt.IsNil(err))
	qt.Check(t, qt.IsTrue(gconf.GetBool("dump-register")))
	_, err = intp.Eval(`((\x. x) 5)`)
	qt.Check(t, qt.IsNil(err))
	_, err = intp.Eval(":dump")
	qt.Check(t, qt.IsNil(err))
	qt.Check(t, qt.IsFalse(gconf.GetBool("dump-register")))
	//
	_, err = (&Intp{}).Eval(":dump")
	qt.Check(t, qt.IsNotNil(err))
}
