package daoscan

// Short messages (one-liners)
const (
	MsgRootShort      = "Find conflicting mod resources in a Dragon Age: Origins install"
	MsgScanShort      = "Scan the game directory for conflicting resources"
	MsgArchiveShort   = "Inspect ERF archive containers"
	MsgInfoShort      = "Show an archive's header summary"
	MsgListShort      = "List an archive's table of contents"
	MsgExtractShort   = "Extract a single resource from an archive"
	MsgIgnoreShort    = "Dismiss a conflict group with its current paths"
	MsgUnignoreShort  = "Un-dismiss a conflict group"
	MsgIgnoredShort   = "List dismissed conflict groups"
	MsgAddinsShort    = "List installed addins from the game registry"
	MsgRmShort        = "Delete a conflicting file"
	MsgRevealShort    = "Open a path's containing directory"
	MsgGenconfigShort = "Write a default configuration file"
	MsgVersionShort   = "Print version information"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagGameDir = "Game data root (default: Documents/BioWare/Dragon Age)"
	MsgFlagFormat  = "Output format: auto, term, text, json"
	MsgFlagDryRun  = "Preview changes without executing them"
	MsgFlagWorkers = "Concurrent archive parsers (1 = sequential)"
	MsgFlagAll     = "Also show dismissed conflict groups"
	MsgFlagLong    = "Include offsets and packed lengths"
	MsgFlagOut     = "Output path ('-' for stdout)"
	MsgFlagForce   = "Allow deleting .erf archives"

	// Status messages
	MsgDryRunNotice  = "DRY RUN MODE - No changes were made"
	MsgWouldDelete   = "would delete %s\n"
	MsgDeleted       = "deleted %s\n"
	MsgIgnoredKey    = "Dismissed '%s' (%d paths)\n"
	MsgUnignoredKey  = "Un-dismissed '%s'\n"
	MsgNoIgnored     = "No dismissed conflict groups."
	MsgConfigWritten = "Wrote %s\n"
	MsgConfigExists  = "Config file %s already exists\n"
)

// Long messages
const (
	MsgRootLong = `daoscan scans a Dragon Age: Origins data directory for file-level
conflicts: resource names provided by more than one source, whether a
loose file under packages/core/override or an entry inside a packed
ERF archive. Such duplicates silently shadow one another at game load
time; daoscan reports them so you can decide which source should win.

daoscan never modifies archives. The only mutating commands are 'rm'
(explicit single-file delete) and the dismiss bookkeeping.`

	MsgScanLong = `Scan walks the game directory, parses every .erf archive it finds,
unifies archive entry names with loose override file names, and prints
each name provided by two or more sources together with the contending
paths. Paths are sorted; the starred last path is the one most likely
to take precedence at load time.

Conflict groups you have dismissed with 'daoscan ignore' stay hidden
while the scan keeps reproducing exactly the same paths for them.`

	MsgArchiveLong = `Read-only inspection of ERF containers (versions V2.0 and V2.2).
See 'daoscan help erf-format' for the container layout.`

	MsgIgnoreLong = `Records a conflict key together with the exact path set the current
scan resolves for it. The group stays hidden from future scans until
its path set changes, at which point it is automatically un-dismissed.`

	MsgRmLong = `Deletes one or more explicitly named files. Archives (.erf) are
refused without --force, since deleting an archive removes every
resource in it, not just the conflicting one.`

	MsgScanExample = `  # Scan the default game directory
  daoscan scan

  # Scan a specific install, machine-readable
  daoscan scan --game-dir /games/dao --format json

  # Parse archives on 4 workers and show dismissed groups too
  daoscan scan --workers 4 --all`

	MsgArchiveExample = `  # Header summary
  daoscan archive info packages/core/data/2da.erf

  # Full table of contents with offsets
  daoscan archive list --long 2da.erf

  # Extract one resource
  daoscan archive extract 2da.erf abilities.gda -o /tmp/abilities.gda`

	MsgIgnoreExample = `  # Hide a reviewed conflict
  daoscan ignore chargen.gda

  # Show everything again
  daoscan unignore chargen.gda`
)
