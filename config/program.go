package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sarchlab/frontsim/front"
)

// A ProgramInst is one instruction of a yaml program file. Either Op or
// Funct identifies the opcode; Op wins when both are present.
type ProgramInst struct {
	Op    string  `yaml:"op"`
	Funct *uint32 `yaml:"funct"`
	XS1   uint64  `yaml:"xs1"`
	XS2   uint64  `yaml:"xs2"`
}

var functByMnemonic = map[string]uint32{
	"fence":  31,
	"mvin":   24,
	"mvout":  25,
	"matmul": 4,
}

// LoadProgram reads an instruction list from a yaml file and resolves
// mnemonics to funct opcodes.
func LoadProgram(path string) ([]front.DecodeRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var insts []ProgramInst
	if err := yaml.Unmarshal(data, &insts); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	reqs := make([]front.DecodeRequest, 0, len(insts))
	for i, inst := range insts {
		req := front.DecodeRequest{XS1: inst.XS1, XS2: inst.XS2}

		switch {
		case inst.Op != "":
			funct, known := functByMnemonic[inst.Op]
			if !known {
				return nil, fmt.Errorf(
					"%s: unknown op %q at instruction %d", path, inst.Op, i)
			}
			req.Funct = funct
		case inst.Funct != nil:
			req.Funct = *inst.Funct
		default:
			return nil, fmt.Errorf(
				"%s: instruction %d has neither op nor funct", path, i)
		}

		reqs = append(reqs, req)
	}

	return reqs, nil
}
