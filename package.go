//
// web service that accepts the rows of an english-proficiency
// score form - a gpa plus any of an ibt, itp or ielts result - and
// returns one admission-style final score per row.
// test results are first brought onto the toefl-ibt scale by the
// configured conversion strategy so that candidates presenting
// different test instruments can be compared on a single scale.
//
package otfscore
