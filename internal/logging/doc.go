// Package logging builds the application logger.
//
// Log entries go to a JSON file under the user's state directory,
// never to the terminal: the interactive UI draws there, and its
// users should not see stack traces bleeding through a breathing
// exercise.
package logging
