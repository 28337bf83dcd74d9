/*
The tzrender package shows an instant as the wall-clock time in a named
timezone together with the zone's abbreviation and its offset from UTC at
that instant. The layout of the time depends on the form in which the time
was originally given (see the timeparse package).

Timezone names are resolved through a Locator so that the timezone database
can be replaced, for instance in tests.
*/
package tzrender
