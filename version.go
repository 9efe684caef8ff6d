package musicxml

// Version is the library version reported by the command line tools.
const Version = "0.1.0"
