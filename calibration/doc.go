// Package calibration recovers trebuchet calibration values: the first
// and last digit of each line of a document, read as a two-digit number,
// and their sum over the whole document.
//
// Digits are either digit characters or, when spelled mode is on, the
// words "one" through "nine". Spelled words may overlap: "eightwo"
// holds both an eight and a two.
package calibration
