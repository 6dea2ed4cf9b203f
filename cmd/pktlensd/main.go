package main

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/natefinch/lumberjack"
	"github.com/pktlens/pktlens/internal/api"
	"github.com/pktlens/pktlens/internal/service"
	"github.com/pktlens/pktlens/pkg/builder"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"golang.org/x/time/rate"
)

var (
	version    bool
	verbose    bool
	listenAddr string
	decodeRate float64
)

func main() {
	pflag.BoolVarP(&version, "version", "V", false, "Print version")
	pflag.BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	pflag.StringVarP(&listenAddr, "addr", "a", ":9922", "Listen address")
	pflag.Float64Var(&decodeRate, "decode-rate", 1000, "Max decode requests per second")
	pflag.Parse()

	if version {
		fmt.Println(builder.BuildInfo())
		os.Exit(0)
	}

	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
		logrus.SetLevel(logrus.InfoLevel)
		logrus.SetOutput(&lumberjack.Logger{
			Filename:   "/var/log/pktlens/pktlensd.log",
			MaxSize:    100,
			MaxBackups: 10,
			MaxAge:     60,
			Compress:   true,
		})
	}

	logrus.WithField("pid", os.Getpid()).Info("pktlensd start")
	defer logrus.WithField("pid", os.Getpid()).Info("pktlensd quit")

	lis, err := net.Listen("tcp", listenAddr)
	if err != nil {
		logrus.WithError(err).Fatal("Fatal to listen")
	}
	defer lis.Close()
	logrus.WithField("addr", lis.Addr()).Info("Listen on")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logrus.WithField("sig", sig).Info("Recv signal")
		lis.Close()
	}()

	decode, err := service.NewDecodeService()
	if err != nil {
		logrus.WithError(err).Fatal("Fatal to new decode service")
	}
	logrus.Info("New decode service")

	g := gin.Default()
	api.SetDecodeRouter(g, decode, rate.NewLimiter(rate.Limit(decodeRate), int(decodeRate)))
	g.RunListener(lis)
}
