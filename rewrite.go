// Package rewrite implements the three-stage JSON-rewrite pipeline
// evaluator: resolve a root subtree, fold the operator pipeline over it,
// and assemble an output document from $root/$working template
// references.
package rewrite

import (
	"github.com/fieldpath/rewrite/jpath"
	"github.com/fieldpath/rewrite/operations"
	"github.com/fieldpath/rewrite/outputtpl"
	"github.com/fieldpath/rewrite/traverse"
	"github.com/fieldpath/rewrite/value"
)

// Execute interprets config against input, returning the assembled
// output document. It is a pure, synchronous, total function: no
// configuration, however malformed, causes it to panic or error.
func Execute(input, config value.Value) value.Value {
	working, root := resolveRoot(input, config)
	working = reducePipeline(working, config)
	return resolveOutput(root, working, config)
}

// StepResult records the outcome of one pipeline step, for callers that
// want to observe what ExecuteTrace did without re-running the pipeline
// themselves.
type StepResult struct {
	Op        string
	Unchanged bool
}

// ExecuteTrace folds the pipeline exactly as Execute does, additionally
// returning one StepResult per pipeline entry: the op kind tag, and
// whether that step left working unchanged (either because its handler
// took the identity path, or because the op was unknown to the
// dispatcher).
func ExecuteTrace(input, config value.Value) (value.Value, []StepResult) {
	working, root := resolveRoot(input, config)

	cfgObj, _ := config.ToObj()
	var pipeline *value.Arr
	if cfgObj != nil {
		pipeline, _ = cfgObj.At("pipeline").ToArr()
	}

	var steps []StepResult
	if pipeline != nil {
		steps = make([]StepResult, 0, pipeline.Length())
		pipeline.Range(func(_ int, opRecord value.Value) bool {
			before := working
			working = operations.Apply(working, opRecord)
			opKind := ""
			if opObj, ok := opRecord.ToObj(); ok {
				opKind, _ = opObj.At("op").ToStr()
			}
			steps = append(steps, StepResult{
				Op:        opKind,
				Unchanged: value.Equal(before, working),
			})
			return true
		})
	}

	return resolveOutput(root, working, config), steps
}

// resolveRoot implements root resolution: root is always the untouched
// input; working starts from config.root.path (default "") read against
// input, with config.root.on_null governing what a Null read degrades
// to. A missing root config uses working = input.
func resolveRoot(input, config value.Value) (working, root value.Value) {
	root = input
	cfgObj, ok := config.ToObj()
	if !ok {
		return input, root
	}
	rootCfg, ok := cfgObj.At("root").ToObj()
	if !ok {
		return input, root
	}
	pathStr := ""
	if p, ok := rootCfg.At("path").ToStr(); ok {
		pathStr = p
	}
	working = traverse.Get(input, jpath.Parse(pathStr))
	if !working.IsNull() {
		return working, root
	}
	onNull, _ := rootCfg.At("on_null").ToStr()
	if onNull == "return_original" {
		return input, root
	}
	return value.FromObj(value.EmptyObj()), root
}

// reducePipeline folds operations.Apply over config.pipeline in order. A
// missing or non-Arr pipeline leaves working unchanged.
func reducePipeline(working, config value.Value) value.Value {
	cfgObj, ok := config.ToObj()
	if !ok {
		return working
	}
	pipeline, ok := cfgObj.At("pipeline").ToArr()
	if !ok {
		return working
	}
	pipeline.Range(func(_ int, opRecord value.Value) bool {
		working = operations.Apply(working, opRecord)
		return true
	})
	return working
}

// resolveOutput resolves config.output against (root, working), defaulting
// to working when output is missing or config itself is not an Obj.
func resolveOutput(root, working, config value.Value) value.Value {
	cfgObj, ok := config.ToObj()
	if !ok {
		return working
	}
	return outputtpl.Resolve(root, working, cfgObj.At("output"))
}
