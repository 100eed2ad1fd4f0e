// Copyright 2026 The hwflow Authors
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package hwflow provides a small deterministic discrete-event simulator for
modeling synchronous hardware in Go.

The kernel advances a logical clock in jumps between scheduled events
rather than continuously. Signals and buses are single-writer wires whose
value changes fire watcher callbacks at the instant of the change; clocked
components (see package rtl) and observers (see package trace) hook into a
running simulation through these watchers.

*/
package hwflow
