package command

import "flag"

// newFlagSet returns a flag.FlagSet whose usage errors are handled by the
// caller (cli.Command.Run returns an exit code, not an os.Exit call), so
// flag.ExitOnError would be wrong here.
func newFlagSet(name string) *flag.FlagSet {
	return flag.NewFlagSet(name, flag.ContinueOnError)
}
