package lib

var Version = "1.0.0"

type Mode uint

const (
	ModeUnknown Mode = iota
	ModeGenerate
	ModeList
	ModeMakefile
	ModeCmake
	ModeNewProject
	ModeInitConfig
)
