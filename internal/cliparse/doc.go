/*
Package cliparse builds the program configuration from flags and environment.

Flags win over environment variables, which win over defaults:

	-file      WATER_FILE       water_data.json
	-backend   WATER_BACKEND    json
	-log-level WATER_LOG_LEVEL  warn

Environment variables may also come from a .env file in the working
directory.

At most one action flag may be given per run. Without one the program prints
today's status line.
*/
package cliparse
