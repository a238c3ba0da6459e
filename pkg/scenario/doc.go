// Package scenario evaluates complete offloading decision instances.
//
// A Scenario groups the task, device, link, server and weight parameters
// that the formulas in package offload take as separate scalars. Evaluate
// checks every parameter against its domain (via package check) and then
// prices both alternatives, producing a Decision. Scenarios can be read from
// YAML:
//
//	name: phone
//	task:
//	  cycles: 2e9
//	  data_bits: 4MB
//	link:
//	  bandwidth_hz: 20e6
//	  channel_gain: 1e-6
//
// or as a list under "scenarios" with a shared "defaults" block. Fields left
// out, or set to zero, fall back to Defaults().
package scenario
