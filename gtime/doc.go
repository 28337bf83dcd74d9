/*
The gtime program shows a time as it is in each of a list of timezones.

The time can be given as a Unix timestamp, as the word 'now', as an RFC3339
or ISO8601 date and time, as a date and time separated by a space (taken to
be UTC) or as a time of day (taken to be today in the local timezone).

The timezones can be given on the command line, in the GTIME_TIMEZONES
environment variable or in a TOML configuration file. The first of these
which gives any timezones is used and the others are ignored.
*/
package main
