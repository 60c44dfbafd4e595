package scarpet

// Version of the scarpet-parser toolchain.
const Version = "0.3.0"
