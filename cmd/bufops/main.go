package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/saylorsolutions/bufops/cmd/internal"
	"github.com/saylorsolutions/bufops/pkg/checksum"
	"github.com/saylorsolutions/bufops/pkg/frame"
	"github.com/saylorsolutions/bufops/pkg/xor"
	flag "github.com/spf13/pflag"
)

const (
	deriveInfo = "bufops xor key"
)

var (
	version = "dev"

	errUsage = errors.New("usage error")
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		internal.Fatal("Error: %v", err)
	}
}

type app struct {
	stdin  io.Reader
	stdout io.Writer

	out        string
	offset     int
	strategy   string
	maxLength  uint64
	withOffset bool
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	var (
		helpFlag    bool
		versionFlag bool
		a           = &app{stdin: stdin, stdout: stdout}
	)
	flags := flag.NewFlagSet("bufops", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.BoolVarP(&helpFlag, "help", "h", false, "Prints this usage information.")
	flags.BoolVar(&versionFlag, "version", false, "Prints the version of bufops.")
	flags.StringVarP(&a.out, "out", "o", "-", "Where screened, sealed, or opened data is written. '-' means stdout.")
	flags.IntVar(&a.offset, "offset", 0, "Starting position within the KEY for the xor command.")
	flags.StringVarP(&a.strategy, "strategy", "s", "auto", "Checksum strategy, one of auto, scalar, or vector.")
	flags.Uint64Var(&a.maxLength, "max-length", frame.DefaultMaxLength, "Largest payload accepted by the open command.")
	flags.BoolVar(&a.withOffset, "with-offset", false, "Also generate a random key offset with the keygen command.")
	flags.Usage = func() {
		_, _ = fmt.Fprintf(stdout, `
bufops screens and checksums byte buffers.

USAGE:  bufops [FLAGS] COMMAND ARGS

COMMANDS:
    xor FILE KEY         Screens FILE with the hex encoded KEY. Running it again with the same KEY and offset restores the original.
    checksum FILE...     Prints the 16 character checksum of each FILE.
    seal FILE [KEY]      Wraps FILE in a checksummed frame, screened with KEY if given.
    open FILE [KEY]      Validates a frame and writes its original payload.
    keygen LENGTH        Generates a random hex key with LENGTH bytes.
    derive LENGTH SECRET [SALT]
                         Derives a hex key with LENGTH bytes from a shared SECRET.

A FILE of '-' reads from stdin.

FLAGS:
%s
SECURITY:
    This is not encryption, this is obfuscation, and they are very different things!
XOR screening is easily reversible, and the checksum is not a MAC.
Checksums computed with the vector strategy differ from the scalar strategy for inputs of 32 bytes or more, so use an explicit strategy for values stored or shared between machines.
`, flags.FlagUsages())
	}
	if len(args) == 0 {
		flags.Usage()
		return nil
	}
	if err := flags.Parse(args); err != nil {
		flags.Usage()
		return fmt.Errorf("%w: parsing flags: %v", errUsage, err)
	}
	if helpFlag {
		flags.Usage()
		return nil
	}
	if versionFlag {
		internal.Fecho(stdout, "bufops %s", version)
		return nil
	}
	if flags.NArg() == 0 {
		return fmt.Errorf("%w: missing required COMMAND argument", errUsage)
	}

	cmdArgs := flags.Args()[1:]
	switch cmd := flags.Arg(0); cmd {
	case "xor":
		return a.xor(cmdArgs)
	case "checksum":
		return a.checksum(cmdArgs)
	case "seal":
		return a.seal(cmdArgs)
	case "open":
		return a.open(cmdArgs)
	case "keygen":
		return a.keygen(cmdArgs)
	case "derive":
		return a.derive(cmdArgs)
	default:
		return fmt.Errorf("%w: unknown command '%s'", errUsage, cmd)
	}
}

func (a *app) xor(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: xor requires FILE and KEY arguments", errUsage)
	}
	key, err := decodeKey(args[1])
	if err != nil {
		return err
	}
	data, err := a.readInput(args[0])
	if err != nil {
		return err
	}
	return a.writeOutput(xor.ApplyAt(data, key, a.offset))
}

func (a *app) checksum(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: checksum requires at least one FILE argument", errUsage)
	}
	strategy, err := checksum.ParseStrategy(a.strategy)
	if err != nil {
		return err
	}
	for _, name := range args {
		data, err := a.readInput(name)
		if err != nil {
			return err
		}
		internal.Fecho(a.stdout, "%s  %s", checksum.HexWith(strategy, data), name)
	}
	return nil
}

func (a *app) seal(args []string) error {
	name, key, err := fileAndOptionalKey("seal", args)
	if err != nil {
		return err
	}
	data, err := a.readInput(name)
	if err != nil {
		return err
	}
	sealed, err := frame.Seal(data, key)
	if err != nil {
		return err
	}
	return a.writeOutput(sealed)
}

func (a *app) open(args []string) error {
	name, key, err := fileAndOptionalKey("open", args)
	if err != nil {
		return err
	}
	data, err := a.readInput(name)
	if err != nil {
		return err
	}
	payload, err := frame.Open(data, key, frame.MaxLength(a.maxLength))
	if err != nil {
		return err
	}
	return a.writeOutput(payload)
}

func (a *app) keygen(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: keygen requires a LENGTH argument", errUsage)
	}
	length, err := parseLength(args[0])
	if err != nil {
		return err
	}
	if a.withOffset {
		key, offset, err := xor.GenKeyAndOffset(length)
		if err != nil {
			return err
		}
		internal.Fecho(a.stdout, "%s %d", hex.EncodeToString(key), offset)
		return nil
	}
	key, err := xor.GenKey(length)
	if err != nil {
		return err
	}
	internal.Fecho(a.stdout, "%s", hex.EncodeToString(key))
	return nil
}

func (a *app) derive(args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("%w: derive requires LENGTH and SECRET arguments, and an optional SALT", errUsage)
	}
	length, err := parseLength(args[0])
	if err != nil {
		return err
	}
	var salt []byte
	if len(args) == 3 {
		salt = []byte(args[2])
	}
	key, err := xor.DeriveKey([]byte(args[1]), salt, []byte(deriveInfo), length)
	if err != nil {
		return err
	}
	internal.Fecho(a.stdout, "%s", hex.EncodeToString(key))
	return nil
}

func (a *app) readInput(name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(a.stdin)
	}
	return os.ReadFile(name)
}

func (a *app) writeOutput(data []byte) error {
	if a.out == "" || a.out == "-" {
		_, err := a.stdout.Write(data)
		return err
	}
	return os.WriteFile(a.out, data, 0600)
}

func fileAndOptionalKey(cmd string, args []string) (string, []byte, error) {
	switch len(args) {
	case 1:
		return args[0], nil, nil
	case 2:
		key, err := decodeKey(args[1])
		if err != nil {
			return "", nil, err
		}
		return args[0], key, nil
	default:
		return "", nil, fmt.Errorf("%w: %s requires a FILE argument, and an optional KEY", errUsage, cmd)
	}
}

func decodeKey(s string) ([]byte, error) {
	key, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("failed to decode KEY, must be a hex string with only the characters a-f, A-F, or 0-9: %w", err)
	}
	return key, nil
}

func parseLength(s string) (int, error) {
	length, err := strconv.Atoi(s)
	if err != nil || length <= 0 {
		return 0, fmt.Errorf("%w: LENGTH must be a positive integer, got '%s'", errUsage, s)
	}
	return length, nil
}
