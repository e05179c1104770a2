package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/x-xyz/holderauction/base/amount"
	"github.com/x-xyz/holderauction/base/ctx"
	"github.com/x-xyz/holderauction/base/database/mongoclient"
	"github.com/x-xyz/holderauction/base/log"
	"github.com/x-xyz/holderauction/base/metrics"
	"github.com/x-xyz/holderauction/base/serial"
	bValidator "github.com/x-xyz/holderauction/base/validator"
	"github.com/x-xyz/holderauction/domain"
	"github.com/x-xyz/holderauction/domain/access"
	"github.com/x-xyz/holderauction/domain/allowlist"
	"github.com/x-xyz/holderauction/domain/auction"
	"github.com/x-xyz/holderauction/domain/erc721"
	mmiddleware "github.com/x-xyz/holderauction/middleware"
	"github.com/x-xyz/holderauction/service/cache/provider/primitive"
	"github.com/x-xyz/holderauction/service/chain"
	"github.com/x-xyz/holderauction/service/chain/contract"
	"github.com/x-xyz/holderauction/service/query"
	access_delivery "github.com/x-xyz/holderauction/stores/access/delivery/http"
	access_repository "github.com/x-xyz/holderauction/stores/access/repository"
	access_usecase "github.com/x-xyz/holderauction/stores/access/usecase"
	allowlist_delivery "github.com/x-xyz/holderauction/stores/allowlist/delivery/http"
	allowlist_repository "github.com/x-xyz/holderauction/stores/allowlist/repository"
	allowlist_usecase "github.com/x-xyz/holderauction/stores/allowlist/usecase"
	auction_delivery "github.com/x-xyz/holderauction/stores/auction/delivery/http"
	auction_repository "github.com/x-xyz/holderauction/stores/auction/repository"
	auction_usecase "github.com/x-xyz/holderauction/stores/auction/usecase"
	auth_delivery "github.com/x-xyz/holderauction/stores/auth/delivery/http"
	auth_middleware "github.com/x-xyz/holderauction/stores/auth/delivery/http/middleware"
	auth_repository "github.com/x-xyz/holderauction/stores/auth/repository"
	auth_usecase "github.com/x-xyz/holderauction/stores/auth/usecase"
	erc721_usecase "github.com/x-xyz/holderauction/stores/erc721/usecase"
	escrow_usecase "github.com/x-xyz/holderauction/stores/escrow/usecase"
	hc_delivery "github.com/x-xyz/holderauction/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/holderauction/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/holderauction/stores/healthcheck/usecase"
)

func init() {
	configFile := pflag.String("config", "infra/configs/config.yaml", "path of the yaml config")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if err := log.SetLevel(viper.GetString("log.level")); err != nil {
		log.Log().WithField("err", err).Warn("unknown log.level, keep info")
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

type repos struct {
	mongoClient *mongoclient.Client
	admin       access.Repo
	allowlist   allowlist.Repo
	listings    auction.ListingRepo
	activities  auction.ActivityRepo
}

func mustInitRepos(context ctx.Ctx) repos {
	switch driver := viper.GetString("storage.driver"); driver {
	case "", "memory":
		context.Info("init memory storage")
		return repos{
			admin:      access_repository.NewMemory(),
			allowlist:  allowlist_repository.NewMemory(),
			listings:   auction_repository.NewListingMemory(),
			activities: auction_repository.NewActivityMemory(),
		}
	case "mongo":
		context.Info("init mongo")
		mongoClient := mongoclient.MustConnectMongoClient(mongoclient.Config{
			URI:                viper.GetString("mongo.uri"),
			AuthDBName:         viper.GetString("mongo.authDBName"),
			DBName:             viper.GetString("mongo.dbName"),
			SSL:                viper.GetBool("mongo.enableSSL"),
			SetSafe:            true,
			PoolSizeMultiplier: 2,
		})
		q := query.New(mongoClient)
		if viper.GetBool("mongo.checkIndex") {
			if err := auction_repository.EnsureIndexes(context, q); err != nil {
				panic(err)
			}
		}
		return repos{
			mongoClient: mongoClient,
			admin:       access_repository.New(q),
			allowlist:   allowlist_repository.New(q),
			listings:    auction_repository.NewListing(q),
			activities:  auction_repository.NewActivity(q),
		}
	default:
		panic(fmt.Sprintf("unknown storage.driver %q", driver))
	}
}

// mustInitHoldings picks where bidder eligibility is read from
func mustInitHoldings(context ctx.Ctx, sandboxHoldings erc721.Holdings) erc721.Holdings {
	switch source := viper.GetString("eligibility.source"); source {
	case "", "memory":
		return sandboxHoldings
	case "chain":
		networks := viper.Sub("networks")
		rpcs := make(map[int32]string)
		if networks != nil {
			for k := range networks.AllSettings() {
				chainId := networks.GetInt32(fmt.Sprintf("%s.chainId", k))
				rpcs[chainId] = networks.GetString(fmt.Sprintf("%s.rpcUrl", k))
			}
		}
		chainService, err := chain.NewClient(context, &chain.ClientCfg{
			RpcUrls:     rpcs,
			MaxInflight: viper.GetInt("eligibility.maxInflight"),
		})
		if err != nil {
			context.WithField("err", err).Warn("some rpc failed to dial")
		}
		chainId := domain.ChainId(viper.GetInt32("eligibility.chainId"))
		return erc721_usecase.NewChainHoldings(chainId, contract.NewErc721(chainService))
	default:
		panic(fmt.Sprintf("unknown eligibility.source %q", source))
	}
}

func main() {
	defer log.Sync()

	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(bValidator.New())

	context := ctx.Background()

	custody := domain.Address(viper.GetString("auction.custody")).ToLower()
	if custody.IsEmpty() {
		panic("auction.custody is required")
	}
	formatter := amount.NewFormatter(viper.GetInt32("auction.tokenDecimals"))

	var sbCfg sandboxCfg
	if err := viper.UnmarshalKey("sandbox", &sbCfg); err != nil {
		panic(err)
	}
	sb, err := seedSandbox(context, sbCfg, formatter, custody)
	if err != nil {
		panic(err)
	}

	r := mustInitRepos(context)
	holdings := mustInitHoldings(context, sb.registry)
	nonceCacheMB := viper.GetInt("auth.nonceCacheMB")
	if nonceCacheMB <= 0 {
		nonceCacheMB = 8
	}
	nonceCache := primitive.NewPrimitive("nonce", nonceCacheMB)

	exec := serial.New()
	recorder := auction_usecase.NewActivityRecorder(r.activities)

	accessUC := access_usecase.New(&access_usecase.AccessUseCaseCfg{
		Repo:     r.admin,
		Serial:   exec,
		Clock:    domain.SystemClock,
		Activity: recorder,
	})
	if err := accessUC.Init(context, domain.Address(viper.GetString("auction.admin"))); err != nil {
		panic(err)
	}

	allowlistUC := allowlist_usecase.New(&allowlist_usecase.AllowlistUseCaseCfg{
		Repo:     r.allowlist,
		Access:   accessUC,
		Holdings: holdings,
		Serial:   exec,
		Clock:    domain.SystemClock,
		Activity: recorder,
	})

	auctionUC := auction_usecase.New(&auction_usecase.AuctionUseCaseCfg{
		Listings:   r.listings,
		Activities: r.activities,
		Activity:   recorder,
		Access:     accessUC,
		Allowlist:  allowlistUC,
		Registry:   sb.registry,
		Vault:      escrow_usecase.New(custody, sb.token),
		Serial:     exec,
		Clock:      domain.SystemClock,
		Metrics:    metrics.New("auction"),
	})

	signingMsgTemplate := viper.GetString("auth.signatureMsg")
	auth := auth_usecase.New(&auth_usecase.AuthUseCaseCfg{
		JwtSecret:          viper.GetString("auth.jwtSecret"),
		SigningMsgTemplate: signingMsgTemplate,
		Nonces:             auth_repository.NewNonceRepo(nonceCache),
		Clock:              domain.SystemClock,
		TokenTTL:           viper.GetDuration("auth.tokenTTL"),
		NonceTTL:           viper.GetDuration("auth.nonceTTL"),
	})
	authMiddleware := auth_middleware.New(auth)

	hc := hc_usecase.New(hc_repo.New(r.mongoClient, nonceCache), domain.SystemClock)

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth, signingMsgTemplate)
	access_delivery.New(e, accessUC, authMiddleware)
	allowlist_delivery.New(e, allowlistUC, authMiddleware)
	auction_delivery.New(e, auctionUC, formatter, domain.SystemClock, authMiddleware)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}

	if r.mongoClient != nil {
		if err := r.mongoClient.Disconnect(ctx); err != nil {
			log.Log().WithField("err", err).Error("mongo disconnect failed")
		}
	}
}
