/* fixdump - dump and validate FIX tag=value messages
 *
 * The main function
 */

package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/fixwire/fixwire"
	"github.com/fixwire/fixwire/internal/fixlog"
)

const usageText = `Usage:
    %s [options] file

Reads a file containing one or more concatenated FIX tag=value messages,
decodes each one, and reports framing errors and MsgType; with -debug
it also reports the size of any configured repeating groups.

Options:
    -config path   load configuration from path (default: ./fixdump.conf)
    -groups list   comma-separated catalog group names to resolve,
                   overriding the configuration file
    -novalidate    skip BodyLength/CheckSum validation
    -pipe          treat '|' in the input file as the SOH field
                   delimiter, for messages pasted from human-readable
                   logs
    -debug         enable per-message debug tracing
    -h             print this message
`

// catalog maps the names a configuration file or -groups flag can use to
// the concrete GroupSpec values in groupspecs.go.
var catalog = map[string]*fix.GroupSpec{
	"NoMDEntries":      fix.NoMDEntries,
	"NoRelatedSym":     fix.NoRelatedSym,
	"NoPartyIDs":       fix.NoPartyIDs,
	"NoNestedPartyIDs": fix.NoNestedPartyIDs,
	"NoAllocs":         fix.NoAllocs,
}

func usage() {
	fmt.Printf(usageText, os.Args[0])
	os.Exit(0)
}

func usageError(format string, args ...interface{}) {
	if format != "" {
		fmt.Printf(format+"\n", args...)
	}
	fmt.Printf("Try %s -h for more information\n", os.Args[0])
	os.Exit(1)
}

type cliParams struct {
	file       string
	configPath string
	groups     []string
	groupsSet  bool
	novalidate bool
	pipe       bool
	debug      bool
}

func parseArgv() (params cliParams) {
	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "-h", "-help", "--help":
			usage()
		case "-config":
			i++
			if i == len(args) {
				usageError("-config requires an argument")
			}
			params.configPath = args[i]
		case "-groups":
			i++
			if i == len(args) {
				usageError("-groups requires an argument")
			}
			params.groups = splitCSV(args[i])
			params.groupsSet = true
		case "-novalidate":
			params.novalidate = true
		case "-pipe":
			params.pipe = true
		case "-debug":
			params.debug = true
		default:
			if params.file != "" {
				usageError("Unexpected argument %q", arg)
			}
			params.file = arg
		}
	}

	if params.file == "" {
		usageError("Missing input file")
	}

	return
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range bytes.Split([]byte(s), []byte(",")) {
		if len(part) > 0 {
			out = append(out, string(part))
		}
	}
	return out
}

// splitMessages splits a buffer holding one or more concatenated FIX
// messages at each "8=" (BeginString) boundary.
func splitMessages(data []byte) [][]byte {
	marker := []byte("8=")

	var starts []int
	for pos := 0; ; {
		idx := bytes.Index(data[pos:], marker)
		if idx == -1 {
			break
		}
		at := pos + idx
		// Only an "8=" at the start of the buffer or right after a field or
		// line terminator is a BeginString; "38=" or "448=" are not.
		if at == 0 || data[at-1] == 0x01 || data[at-1] == '\n' || data[at-1] == '\r' {
			starts = append(starts, at)
		}
		pos = at + len(marker)
	}

	var msgs [][]byte
	for i, start := range starts {
		end := len(data)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		msg := bytes.TrimRight(data[start:end], "\r\n")
		if len(msg) > 0 {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}

func main() {
	params := parseArgv()

	if err := ConfLoad(params.configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if params.groupsSet {
		Conf.Groups = params.groups
	}
	if params.novalidate {
		Conf.ValidateFrames = false
	}

	level := Conf.LogConsole
	if params.debug {
		level |= fixlog.LogDebug | fixlog.LogTraceCodec
	}
	log := fixlog.New(os.Stdout, level)

	runID := uuid.New().String()
	log.Info("fixdump run %s starting, file=%s", runID, params.file)

	data, err := os.ReadFile(params.file)
	if err != nil {
		log.Exit("%s", err)
	}
	if params.pipe {
		data = bytes.ReplaceAll(data, []byte{'|'}, []byte{0x01})
	}

	var groupSpecs []*fix.GroupSpec
	for _, name := range Conf.Groups {
		spec, ok := catalog[name]
		if !ok {
			log.Exit("unknown group %q", name)
		}
		groupSpecs = append(groupSpecs, spec)
	}

	dec := fix.NewDecoder()
	messages := splitMessages(data)
	failures := 0

	for i, raw := range messages {
		msg := log.Begin()

		view, err := dec.Decode(raw)
		if err != nil {
			msg.Error("message %d: decode failed: %s", i, err)
			msg.HexDump(fixlog.LogDebug, raw)
			msg.Commit()
			failures++
			continue
		}

		msgType, _ := view.MsgType()
		msg.Info("message %d: MsgType=%s fields=%d", i, msgType, len(view.Fields()))

		if Conf.ValidateFrames {
			if err := view.ValidateBodyLength(); err != nil {
				msg.Error("message %d: %s", i, err)
				failures++
			}
			if err := view.ValidateCheckSum(); err != nil {
				msg.Error("message %d: %s", i, err)
				failures++
			}
		}

		for _, spec := range groupSpecs {
			groups, err := view.Groups(spec)
			if err != nil {
				msg.Error("message %d: group resolve failed: %s", i, err)
				failures++
				continue
			}
			msg.Debug("message %d: resolved %d instance(s)", i, len(groups))
		}

		msg.Commit()
	}

	log.Info("fixdump run %s done: %d message(s), %d failure(s)", runID, len(messages), failures)
	if failures > 0 {
		os.Exit(1)
	}
}
