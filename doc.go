// Package csmasim is a discrete-event simulator of a CSMA/CA wireless
// medium-access protocol, in the style of the 802.11 DCF, including
// optional RTS/CTS virtual carrier sensing.
//
// The simulator models a population of [Station]s sharing a broadcast
// [Medium]. Each station runs a [Transmitter] backed by a [CSMA] state
// machine that arbitrates access to the medium using carrier sense,
// random backoff, interframe spacing (DIFS/SIFS), and the network
// allocation vector (NAV). Stations exchange [Frame]s of type DATA, RTS,
// CTS, and ACK; frames propagate across a 2D plane at a finite speed, so
// a receiver only observes a frame once its propagation front reaches
// the receiver's location. This finite propagation speed combined with
// a bounded detection range is what produces the hidden-terminal effect.
//
// A single logical clock, the [Timeline], drives every participant in
// lock-step: each tick first lets every participant observe the current
// state ([Participant.OnTickInit]), then lets every participant mutate
// it ([Participant.OnTick]). This two-phase pass makes the simulation
// deterministic and independent of registration order.
//
// To run a simulation, build a [World] from a [Config] and call
// [NewMedium] to populate it with stations, then call [World.Run]. See
// package cmd/csmasim for a complete command-line driver, including
// parameter sweeps and CSV result export.
package csmasim
