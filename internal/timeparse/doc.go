/*
The timeparse package recognises a free-form time string and converts it
into an instant in UTC. It tries a fixed, ordered list of forms (the word
"now", RFC 3339, ISO 8601 with a numeric offset, a Unix timestamp, a
"YYYY-MM-DD HH:MM:SS" date and time, and a bare time of day) and records
which one matched so that the result can later be shown in a matching
style.

The current time and the local timezone are the only things a Parser takes
from its environment and both can be replaced when the Parser is created.
*/
package timeparse
