// Package voice maps free-text commands to filter criterion changes.
//
// Parsing is a pure function so the browse engine stays free of any input
// modality; the same grammar serves spoken input, a prompt, or a CLI
// argument. The caller applies the resulting Command to its engine.
package voice
