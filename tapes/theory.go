package tapes

const Theory = `
# Tape System Theory

A Tape is a pre-recorded terminal demonstration: an ordered list of timed
commands for a terminal-automation host, plus human-readable narration.

## 1. Core Model
- **Step**: one unit of playback. It may carry a Note (narration), a Command
  (what the host executes), and a Delay (pacing). Any of the three may be
  absent: a step with no command is a pure pause, a step with no note is
  silent.
- **Tape**: a named, ordered, immutable sequence of steps. Order is the
  program; there is no branching, no state, no feedback from the host.
- **Player**: a deterministic interpreter. It walks the tape once, in order,
  emitting each command and waiting out each delay.

## 2. Two Channels, Never Crossed
- **Command stream (stdout)**: exclusively line-delimited JSON commands, one
  complete value per line, flushed per line. A host can pipe this stream
  directly; a single stray diagnostic would corrupt the protocol.
- **Diagnostic channel (stderr via the logger)**: notes, progress, errors.
  Everything a human watching the demonstration should see.

## 3. Timing Discipline
Delays are lower bounds, not deadlines. The player guarantees at least the
step's delay passes after its command is emitted before the next command
goes out; scheduling may stretch but never shrink a pause. Hosts are driven
open-loop, so pacing is the only synchronization mechanism available.

## 4. Construction vs Playback
Tapes are built (by the Builder, or decoded from a config file) strictly
before playback. The builder folds narration and pacing into steps; the
player only interprets. Interrupting playback cancels the pending delay and
stops cleanly, because a half-played demonstration is still a valid one.
`
