package config

type App struct {
	Port        string `env:"APP_PORT" default:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required"`
	JWTSecret   string `env:"JWT_SECRET,required"`
	BooksCSV    string `env:"BOOKS_CSV" default:"./data/Books.csv"`
	OutputDir   string `env:"OUTPUT_DIR" default:"./output"`
	Env         string `env:"APP_ENV" default:"dev"`
}
